package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// VerdictObserver is notified whenever the serviceability verdict changes.
type VerdictObserver func(verdict entity.ServiceabilityVerdict)

// ServiceabilityChecker derives the serviceability verdict for the store's current pincode.
type ServiceabilityChecker interface {
	// Verdict returns the current verdict.
	Verdict() entity.ServiceabilityVerdict

	// Check runs a check for pincode synchronously and returns the resulting verdict.
	// The verdict is published only when pincode is the store's current pincode and no
	// newer check was started meanwhile; any other pincode is answered without side effects.
	Check(ctx context.Context, pincode entity.Pincode) entity.ServiceabilityVerdict

	// Subscribe registers an observer and returns a function that removes it.
	Subscribe(observer VerdictObserver) (unsubscribe func())

	// Close stops reacting to location changes and discards in-flight checks.
	Close()
}
