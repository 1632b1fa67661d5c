package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
)

type geolocationSource struct {
	locator  service.DeviceLocator
	provider service.GeoProvider
	store    usecase.LocationStore
	timeout  time.Duration
	logger   *slog.Logger
}

// NewGeolocationSource creates the device geolocation adapter.
func NewGeolocationSource(
	locator service.DeviceLocator,
	provider service.GeoProvider,
	store usecase.LocationStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeolocationUsecase {
	return &geolocationSource{
		locator:  locator,
		provider: provider,
		store:    store,
		timeout:  cfg.Device.Timeout,
		logger:   logger,
	}
}

// Locate reads the device position with high accuracy. A timeout is reported as such, any other
// locator failure as a denial; neither touches the store.
func (s *geolocationSource) Locate(ctx context.Context) (*entity.Location, error) {
	position, err := s.locator.CurrentPosition(ctx, true, s.timeout)
	if err != nil {
		s.logger.Warn("Device geolocation failed", slog.Any("error", err))

		switch {
		case errors.Is(err, domainerrors.ErrPermissionDenied), errors.Is(err, domainerrors.ErrLocationTimeout):
			return nil, err
		case errors.Is(err, context.DeadlineExceeded):
			return nil, domainerrors.ErrLocationTimeout.WrapMessage(err.Error())
		default:
			return nil, domainerrors.ErrPermissionDenied.WrapMessage(err.Error())
		}
	}

	location := s.resolve(ctx, position)
	s.store.Update(ctx, location)

	return &location, nil
}

// resolve reverse geocodes position, falling back to a coordinate-only location.
func (s *geolocationSource) resolve(ctx context.Context, position orb.Point) entity.Location {
	fallback := entity.Location{
		Coordinate: &position,
		Address:    entity.CoordinateLabel(position),
	}

	if !s.provider.Available() {
		s.logger.Info("Geo provider unavailable, using coordinates only")

		return fallback
	}

	result, err := s.provider.ReverseGeocode(ctx, position.Lat(), position.Lon())
	if err != nil {
		s.logger.Warn("Reverse geocoding failed, using coordinates only", slog.Any("error", err))

		return fallback
	}

	return entity.LocationFromComponents(position, result.Components, result.FormattedAddress)
}
