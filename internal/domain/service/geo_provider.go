package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PredictOptions restricts predictive search.
type PredictOptions struct {
	Country string   // ISO 3166-1 alpha-2 code, e.g. "in"
	Types   []string // provider place types, e.g. "geocode"
}

// GeoProvider is the external geocoding and predictive search capability.
// Implementations return domainerrors.ErrProviderUnavailable when they are not configured.
type GeoProvider interface {
	// Available reports whether the provider can serve requests at all.
	Available() bool

	// Predict returns autocomplete suggestions for a partial address query.
	Predict(ctx context.Context, query string, opts PredictOptions) ([]entity.Suggestion, error)

	// Details looks up the structured place behind a suggestion id.
	Details(ctx context.Context, placeID string, fields []string) (*entity.PlaceDetails, error)

	// ReverseGeocode converts a coordinate into a structured address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error)
}
