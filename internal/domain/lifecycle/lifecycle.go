// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and background components.
const DefaultTimeout = 10 * time.Second
