// Package google implements the geo provider on top of the Google Maps web services.
package google

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

// MapsProvider implements service.GeoProvider against the Places and Geocoding APIs.
type MapsProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewMapsProvider creates a provider. baseURL may be empty to use the public endpoint.
func NewMapsProvider(baseURL, apiKey string, logger *slog.Logger) *MapsProvider {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &MapsProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Available implements service.GeoProvider.
func (p *MapsProvider) Available() bool {
	return p.apiKey != ""
}

type apiLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type apiPlace struct {
	AddressComponents []entity.AddressComponent `json:"address_components"`
	FormattedAddress  string                    `json:"formatted_address"`
	Geometry          struct {
		Location apiLatLng `json:"location"`
	} `json:"geometry"`
}

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Predictions  []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
	Result       apiPlace `json:"result"`
}

type geocodeResponse struct {
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	Results      []apiPlace `json:"results"`
}

// Predict implements service.GeoProvider using Place Autocomplete.
func (p *MapsProvider) Predict(ctx context.Context, query string, opts service.PredictOptions) ([]entity.Suggestion, error) {
	params := url.Values{}
	params.Set("input", query)
	if opts.Country != "" {
		params.Set("components", "country:"+opts.Country)
	}
	if len(opts.Types) > 0 {
		params.Set("types", strings.Join(opts.Types, "|"))
	}

	var resp autocompleteResponse
	if err := p.get(ctx, "/place/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return []entity.Suggestion{}, nil
	default:
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}

	suggestions := make([]entity.Suggestion, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		suggestions = append(suggestions, entity.Suggestion{
			ID:          prediction.PlaceID,
			Description: prediction.Description,
		})
	}

	return suggestions, nil
}

// Details implements service.GeoProvider using Place Details.
func (p *MapsProvider) Details(ctx context.Context, placeID string, fields []string) (*entity.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}

	var resp detailsResponse
	if err := p.get(ctx, "/place/details/json", params, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case statusOK:
	case statusNotFound, statusZeroResults:
		return nil, domainerrors.ErrPlaceNotFound.WrapMessage(placeID)
	default:
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}

	location := resp.Result.Geometry.Location

	return &entity.PlaceDetails{
		Coordinate:       orb.Point{location.Lng, location.Lat},
		Components:       resp.Result.AddressComponents,
		FormattedAddress: resp.Result.FormattedAddress,
	}, nil
}

// ReverseGeocode implements service.GeoProvider using the Geocoding API.
func (p *MapsProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("latlng", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))

	var resp geocodeResponse
	if err := p.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}
	if len(resp.Results) == 0 {
		return nil, errors.New("reverse geocoding returned no results")
	}

	first := resp.Results[0]

	return &entity.GeocodeResult{
		Components:       first.AddressComponents,
		FormattedAddress: first.FormattedAddress,
	}, nil
}

func (p *MapsProvider) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	p.logger.Debug("Maps API call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("maps api %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode maps api %s response", path)
	}

	return nil
}

func statusError(status, message string) error {
	if message == "" {
		return errors.Errorf("maps api status %s", status)
	}

	return errors.Errorf("maps api status %s: %s", status, message)
}
