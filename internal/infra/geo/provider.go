// Package geo selects the geocoding and predictive search provider.
package geo

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/geo/google"
)

// unavailableProvider is used when no provider is configured. Every call fails with ErrProviderUnavailable.
type unavailableProvider struct{}

func (unavailableProvider) Available() bool { return false }

func (unavailableProvider) Predict(context.Context, string, service.PredictOptions) ([]entity.Suggestion, error) {
	return nil, domainerrors.ErrProviderUnavailable
}

func (unavailableProvider) Details(context.Context, string, []string) (*entity.PlaceDetails, error) {
	return nil, domainerrors.ErrProviderUnavailable
}

func (unavailableProvider) ReverseGeocode(context.Context, float64, float64) (*entity.GeocodeResult, error) {
	return nil, domainerrors.ErrProviderUnavailable
}

// NewProvider creates a GeoProvider based on configuration
func NewProvider(cfg *config.Config, logger *slog.Logger) service.GeoProvider {
	if cfg.Geo == nil || cfg.Geo.APIKey == "" {
		logger.Warn("Geo provider not configured, address search and reverse geocoding disabled")

		return unavailableProvider{}
	}

	logger.Info("Using Google Maps geo provider", slog.String("base_url", cfg.Geo.BaseURL))

	return google.NewMapsProvider(cfg.Geo.BaseURL, cfg.Geo.APIKey, logger)
}
