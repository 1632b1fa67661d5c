package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo           *echo.Echo
	serviceability *mockSvc.MockServiceabilityAPI
	delivery       *mockSvc.MockDeliveryAPI
	account        *mockSvc.MockAccountAPI
	provider       *mockSvc.MockGeoProvider
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Storage: &config.StorageConfig{Key: "user_location"},
		Geo:     &config.GeoConfig{Country: "in", SearchMinLength: 3},
		Device:  &config.DeviceConfig{Timeout: 10 * time.Second},
	}
	cfg.Env.Debug = true

	repo := mockRepo.NewMockLocationRepository(t)
	repo.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().DeleteLocation(mock.Anything).Return(nil).Maybe()

	f := &apiFixture{
		serviceability: mockSvc.NewMockServiceabilityAPI(t),
		delivery:       mockSvc.NewMockDeliveryAPI(t),
		account:        mockSvc.NewMockAccountAPI(t),
		provider:       mockSvc.NewMockGeoProvider(t),
	}

	store := impl.NewLocationStore(repo, logger)
	checker := impl.NewServiceabilityChecker(store, f.serviceability, logger)
	estimator := impl.NewDeliveryEstimator(f.delivery, logger)
	surfaces := impl.NewSurfaceRegistry(store, checker, estimator, logger)
	t.Cleanup(func() {
		surfaces.Close()
		checker.Close()
	})

	f.echo = NewEcho(HTTPParams{
		Config: cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{
				Store:          store,
				Geolocation:    impl.NewGeolocationSource(mockSvc.NewMockDeviceLocator(t), f.provider, store, cfg, logger),
				AddressSearch:  impl.NewAddressSearchSource(f.provider, store, cfg, logger),
				Pincode:        impl.NewPincodeSource(store, logger),
				SavedAddresses: impl.NewSavedAddressSource(f.account, store, logger),
				Logger:         logger,
			}),
			ServiceabilityHandler: handler.NewServiceabilityHandler(checker),
			SurfaceHandler: handler.NewSurfaceHandler(handler.SurfaceHandlerParams{
				Surfaces:  surfaces,
				Estimator: estimator,
				Logger:    logger,
			}),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(auth.NewSessionReader(), logger),
		},
		ErrorMiddleware:     httpmiddleware.NewErrorMiddleware(logger),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, cfg),
	})

	return f
}

func (f *apiFixture) do(t *testing.T, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestAPI_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	f := newAPIFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/location", "", deliverycontext.HeaderXRequestID, "req-42")
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_SubmitPincode(t *testing.T) {
	f := newAPIFixture(t)
	f.serviceability.EXPECT().CheckServiceability(mock.Anything, entity.Pincode("400001")).
		Return(&entity.ServiceabilityResult{Serviceable: true}, nil)

	rec, env := f.do(t, http.MethodPut, "/location/pincode", `{"pincode":"400001"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var state handler.LocationResponse
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.HasLocation)
	require.NotNil(t, state.Location)
	assert.Equal(t, entity.Pincode("400001"), state.Location.Pincode)
	assert.Equal(t, "Pincode: 400001", state.Location.Address)

	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/serviceability", nil))

		var resp struct {
			Data entity.ServiceabilityVerdict `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			return false
		}

		return resp.Data.State == entity.ServiceabilityServiceable
	}, time.Second, 5*time.Millisecond)
}

func TestAPI_CheckOtherPincodeKeepsCurrentVerdict(t *testing.T) {
	f := newAPIFixture(t)
	f.serviceability.EXPECT().CheckServiceability(mock.Anything, entity.Pincode("400001")).
		Return(&entity.ServiceabilityResult{Serviceable: true}, nil)
	f.serviceability.EXPECT().CheckServiceability(mock.Anything, entity.Pincode("999999")).
		Return(&entity.ServiceabilityResult{Serviceable: false, Message: "nope"}, nil)

	rec, _ := f.do(t, http.MethodPut, "/location/pincode", `{"pincode":"400001"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	currentVerdict := func() entity.ServiceabilityVerdict {
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/serviceability", nil))

		var resp struct {
			Data entity.ServiceabilityVerdict `json:"data"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)

		return resp.Data
	}
	require.Eventually(t, func() bool {
		return currentVerdict().State == entity.ServiceabilityServiceable
	}, time.Second, 5*time.Millisecond)

	rec, env := f.do(t, http.MethodGet, "/serviceability/999999", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var checked entity.ServiceabilityVerdict
	require.NoError(t, json.Unmarshal(env.Data, &checked))
	assert.False(t, checked.IsServiceable)
	assert.Equal(t, "nope", checked.Message)

	verdict := currentVerdict()
	assert.True(t, verdict.IsServiceable)
	assert.Equal(t, entity.Pincode("400001"), verdict.Pincode)
}

func TestAPI_SubmitPincodeInvalid(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPut, "/location/pincode", `{"pincode":"4000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_PINCODE", env.Error.Code)

	rec, env = f.do(t, http.MethodPut, "/location/pincode", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_SuggestionsWithoutProvider(t *testing.T) {
	f := newAPIFixture(t)
	f.provider.EXPECT().Available().Return(false)

	rec, env := f.do(t, http.MethodGet, "/location/suggestions?q=Bandra", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SuggestionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Suggestions)
}

func TestAPI_SavedAddressesRequireSession(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/location/saved-addresses", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)

	rec, _ = f.do(t, http.MethodGet, "/location/saved-addresses", "", echo.HeaderAuthorization, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_SavedAddresses(t *testing.T) {
	f := newAPIFixture(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "shopper-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("account_service_secret"))
	require.NoError(t, err)

	f.account.EXPECT().ListAddresses(mock.Anything, token).Return([]entity.SavedAddress{
		{ID: "a1", AddressLine1: "12 MG Road", City: "Pune", Pincode: "411001", IsDefault: true},
	}, nil)

	rec, env := f.do(t, http.MethodGet, "/location/saved-addresses", "", echo.HeaderAuthorization, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var addresses []entity.SavedAddress
	require.NoError(t, json.Unmarshal(env.Data, &addresses))
	require.Len(t, addresses, 1)
	assert.Equal(t, "a1", addresses[0].ID)
}

func TestAPI_SurfaceLifecycle(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/surfaces", `{"product_id":42,"variant":"full"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var mounted handler.SurfaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &mounted))
	assert.Equal(t, "no_location", string(mounted.Display.Kind))
	assert.True(t, mounted.Display.ChangeLocation)

	rec, _ = f.do(t, http.MethodGet, "/surfaces/"+mounted.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodDelete, "/surfaces/"+mounted.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = f.do(t, http.MethodGet, "/surfaces/"+mounted.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SURFACE_NOT_FOUND", env.Error.Code)

	rec, _ = f.do(t, http.MethodPost, "/surfaces", `{"product_id":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_DeliveryEstimate(t *testing.T) {
	f := newAPIFixture(t)
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	days := 4
	f.delivery.EXPECT().CheckDelivery(mock.Anything, entity.Pincode("400001"), entity.ProductID(42)).
		Return(&entity.DeliveryEstimate{Success: true, EstimatedDate: &date, Days: &days}, nil)

	rec, env := f.do(t, http.MethodGet, "/delivery/estimate?pincode=400001&product_id=42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"estimated_date":"2026-10-21","days":4}`, string(env.Data))

	rec, env = f.do(t, http.MethodGet, "/delivery/estimate?pincode=40000a&product_id=42", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
