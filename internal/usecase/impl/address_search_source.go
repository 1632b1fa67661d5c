package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const (
	searchPlaceholder            = "Search for area, street name..."
	searchUnavailablePlaceholder = "Address search unavailable. Enter your pincode instead"
)

var (
	predictTypes = []string{"geocode"}
	placeFields  = []string{"geometry", "address_components", "formatted_address"}
)

type addressSearchSource struct {
	provider  service.GeoProvider
	store     usecase.LocationStore
	country   string
	minLength int
	logger    *slog.Logger
}

// NewAddressSearchSource creates the predictive address search adapter.
func NewAddressSearchSource(
	provider service.GeoProvider,
	store usecase.LocationStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AddressSearchUsecase {
	return &addressSearchSource{
		provider:  provider,
		store:     store,
		country:   cfg.Geo.Country,
		minLength: cfg.Geo.SearchMinLength,
		logger:    logger,
	}
}

func (s *addressSearchSource) Available() bool {
	return s.provider.Available()
}

func (s *addressSearchSource) Placeholder() string {
	if s.Available() {
		return searchPlaceholder
	}

	return searchUnavailablePlaceholder
}

// Suggest only reaches the provider once the trimmed query has minLength characters.
func (s *addressSearchSource) Suggest(ctx context.Context, query string) ([]entity.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLength {
		return []entity.Suggestion{}, nil
	}

	if !s.Available() {
		return nil, domainerrors.ErrProviderUnavailable
	}

	suggestions, err := s.provider.Predict(ctx, query, service.PredictOptions{
		Country: s.country,
		Types:   predictTypes,
	})
	if err != nil {
		s.logger.Warn("Predictive search failed", slog.String("query", query), slog.Any("error", err))

		return nil, providerError(err, "predictive search failed")
	}

	return suggestions, nil
}

// Select resolves a suggestion into a location and submits it.
func (s *addressSearchSource) Select(ctx context.Context, placeID string) (*entity.Location, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("place id is required")
	}

	if !s.Available() {
		return nil, domainerrors.ErrProviderUnavailable
	}

	details, err := s.provider.Details(ctx, placeID, placeFields)
	if err != nil {
		s.logger.Warn("Place details lookup failed", slog.String("place_id", placeID), slog.Any("error", err))

		return nil, providerError(err, "place details lookup failed")
	}

	location := entity.LocationFromComponents(details.Coordinate, details.Components, details.FormattedAddress)
	s.store.Update(ctx, location)

	return &location, nil
}

// providerError keeps domain errors and wraps everything else as an upstream failure.
func providerError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewUpstreamError(err, details)
}
