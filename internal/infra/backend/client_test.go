package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Backend: &config.BackendConfig{BaseURL: server.URL + "/"}}

	return NewClient(cfg, slog.Default())
}

func TestClient_CheckServiceability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/serviceability/check/400001", r.URL.Path)
		_, _ = w.Write([]byte(`{"serviceable":false,"message":"We do not deliver here yet"}`))
	})

	result, err := client.CheckServiceability(context.Background(), "400001")
	require.NoError(t, err)
	assert.False(t, result.Serviceable)
	assert.Equal(t, "We do not deliver here yet", result.Message)
}

func TestClient_CheckServiceability_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result, err := client.CheckServiceability(context.Background(), "400001")
	assert.Nil(t, result)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestClient_CheckDelivery_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delivery/check", r.URL.Path)
		assert.Equal(t, "400001", r.URL.Query().Get("pincode"))
		assert.Equal(t, "42", r.URL.Query().Get("product_id"))
		_, _ = w.Write([]byte(`{"success":true,"estimated_date":"2025-06-01","days":5}`))
	})

	estimate, err := client.CheckDelivery(context.Background(), "400001", 42)
	require.NoError(t, err)
	require.True(t, estimate.Success)
	require.NotNil(t, estimate.EstimatedDate)
	require.NotNil(t, estimate.Days)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), *estimate.EstimatedDate)
	assert.Equal(t, 5, *estimate.Days)
}

func TestClient_CheckDelivery_BusinessFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"Not serviceable"}`))
	})

	estimate, err := client.CheckDelivery(context.Background(), "000000", 42)
	require.NoError(t, err)
	assert.False(t, estimate.Success)
	assert.Equal(t, "Not serviceable", estimate.Error)
	assert.Nil(t, estimate.EstimatedDate)
}

func TestClient_CheckDelivery_BadDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"estimated_date":"June 1st","days":5}`))
	})

	_, err := client.CheckDelivery(context.Background(), "400001", 42)
	assert.Error(t, err)
}

func TestClient_ListAddresses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare list", body: `[{"id":"a1","full_name":"Asha","address_line1":"12 MG Road","city":"Pune","pincode":"411001","latitude":18.52,"longitude":73.85,"state":"Maharashtra","is_default":true}]`},
		{name: "data envelope", body: `{"data":[{"id":"a1","full_name":"Asha","address_line1":"12 MG Road","city":"Pune","pincode":"411001","latitude":18.52,"longitude":73.85,"state":"Maharashtra","is_default":true}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/addresses", r.URL.Path)
				assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
				assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))
				_, _ = w.Write([]byte(tt.body))
			})

			ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
			addresses, err := client.ListAddresses(ctx, "token-123")
			require.NoError(t, err)
			require.Len(t, addresses, 1)
			assert.Equal(t, "a1", addresses[0].ID)
			assert.Equal(t, entity.Pincode("411001"), addresses[0].ToLocation().Pincode)
			assert.True(t, addresses[0].IsDefault)
		})
	}
}

func TestClient_Unconfigured(t *testing.T) {
	client := NewClient(&config.Config{Backend: &config.BackendConfig{}}, slog.Default())

	_, err := client.CheckServiceability(context.Background(), "400001")
	assert.Error(t, err)
}

func TestClient_ListAddresses_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListAddresses(context.Background(), "expired")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
