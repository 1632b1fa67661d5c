package google

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *MapsProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewMapsProvider(server.URL, "test-key", slog.Default())
}

func TestMapsProvider_Predict(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/autocomplete/json", r.URL.Path)
		assert.Equal(t, "Andheri", r.URL.Query().Get("input"))
		assert.Equal(t, "country:in", r.URL.Query().Get("components"))
		assert.Equal(t, "geocode", r.URL.Query().Get("types"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"status":"OK","predictions":[{"place_id":"p1","description":"Andheri East, Mumbai"}]}`))
	})

	suggestions, err := provider.Predict(context.Background(), "Andheri", service.PredictOptions{Country: "in", Types: []string{"geocode"}})
	require.NoError(t, err)
	assert.Equal(t, []entity.Suggestion{{ID: "p1", Description: "Andheri East, Mumbai"}}, suggestions)
}

func TestMapsProvider_Predict_ZeroResults(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","predictions":[]}`))
	})

	suggestions, err := provider.Predict(context.Background(), "zzzz", service.PredictOptions{})
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestMapsProvider_Predict_Denied(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	})

	_, err := provider.Predict(context.Background(), "Andheri", service.PredictOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestMapsProvider_Details(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		assert.Equal(t, "geometry,address_components", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"status":"OK","result":{
			"formatted_address":"Andheri East, Mumbai, Maharashtra 400069, India",
			"geometry":{"location":{"lat":19.1136,"lng":72.8697}},
			"address_components":[
				{"long_name":"400069","short_name":"400069","types":["postal_code"]},
				{"long_name":"Mumbai","short_name":"Mumbai","types":["locality","political"]},
				{"long_name":"Maharashtra","short_name":"MH","types":["administrative_area_level_1","political"]}
			]}}`))
	})

	details, err := provider.Details(context.Background(), "p1", []string{"geometry", "address_components"})
	require.NoError(t, err)
	assert.InDelta(t, 19.1136, details.Coordinate.Lat(), 1e-9)
	assert.InDelta(t, 72.8697, details.Coordinate.Lon(), 1e-9)

	parts := entity.ExtractAddressParts(details.Components)
	assert.Equal(t, entity.AddressParts{PostalCode: "400069", City: "Mumbai", State: "Maharashtra"}, parts)
}

func TestMapsProvider_Details_NotFound(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
	})

	_, err := provider.Details(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestMapsProvider_ReverseGeocode(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "19.076,72.8777", r.URL.Query().Get("latlng"))
		_, _ = w.Write([]byte(`{"status":"OK","results":[{
			"formatted_address":"Fort, Mumbai 400001",
			"address_components":[{"long_name":"400001","short_name":"400001","types":["postal_code"]}]}]}`))
	})

	result, err := provider.ReverseGeocode(context.Background(), 19.076, 72.8777)
	require.NoError(t, err)
	assert.Equal(t, "Fort, Mumbai 400001", result.FormattedAddress)
	assert.Equal(t, "400001", entity.ExtractAddressParts(result.Components).PostalCode)
}

func TestMapsProvider_ReverseGeocode_HTTPError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := provider.ReverseGeocode(context.Background(), 19.076, 72.8777)
	assert.Error(t, err)
}
