// Package delivery contains the outer surfaces of the storefront process.
package delivery

import "context"

// Delivery is a long-running surface started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
