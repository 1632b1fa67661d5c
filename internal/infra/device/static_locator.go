// Package device provides DeviceLocator implementations.
package device

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// StaticLocator reports a fixed position taken from configuration, as a kiosk or
// a desktop without GPS would.
type StaticLocator struct {
	position orb.Point
	granted  bool
	logger   *slog.Logger
}

// NewStaticLocator creates a locator from the device section of the config.
func NewStaticLocator(cfg *config.Config, logger *slog.Logger) service.DeviceLocator {
	return &StaticLocator{
		position: orb.Point{cfg.Device.Longitude, cfg.Device.Latitude},
		granted:  cfg.Device.PermissionGranted,
		logger:   logger,
	}
}

// CurrentPosition implements service.DeviceLocator.
func (l *StaticLocator) CurrentPosition(ctx context.Context, highAccuracy bool, timeout time.Duration) (orb.Point, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	l.logger.Debug("Device position requested", slog.Bool("high_accuracy", highAccuracy))

	if err := ctx.Err(); err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	if !l.granted {
		return orb.Point{}, domainerrors.ErrPermissionDenied
	}

	return l.position, nil
}
