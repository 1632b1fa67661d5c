package service

import (
	"context"
	"time"

	"github.com/paulmach/orb"
)

// DeviceLocator is the device geolocation capability.
type DeviceLocator interface {
	// CurrentPosition returns the device position. Implementations must give up after timeout
	// and return domainerrors.ErrPermissionDenied when the shopper refused access.
	CurrentPosition(ctx context.Context, highAccuracy bool, timeout time.Duration) (orb.Point, error)
}
