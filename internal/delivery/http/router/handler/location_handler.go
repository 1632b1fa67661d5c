package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Store          usecase.LocationStore
	Geolocation    usecase.GeolocationUsecase
	AddressSearch  usecase.AddressSearchUsecase
	Pincode        usecase.PincodeUsecase
	SavedAddresses usecase.SavedAddressUsecase
	Logger         *slog.Logger
}

// LocationHandler exposes the location store and its sources.
type LocationHandler struct {
	store          usecase.LocationStore
	geolocation    usecase.GeolocationUsecase
	addressSearch  usecase.AddressSearchUsecase
	pincode        usecase.PincodeUsecase
	savedAddresses usecase.SavedAddressUsecase
	logger         *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		store:          params.Store,
		geolocation:    params.Geolocation,
		addressSearch:  params.AddressSearch,
		pincode:        params.Pincode,
		savedAddresses: params.SavedAddresses,
		logger:         params.Logger,
	}
}

// LocationResponse is the current location state.
type LocationResponse struct {
	Location    *entity.Location `json:"location"`
	HasLocation bool             `json:"has_location"`
	PromptOpen  bool             `json:"prompt_open"`
}

// SubmitPincodeRequest is the manual entry body.
type SubmitPincodeRequest struct {
	Pincode string `json:"pincode" validate:"required"`
}

// SuggestionsResponse is the predictive search result.
type SuggestionsResponse struct {
	Available   bool                `json:"available"`
	Placeholder string              `json:"placeholder"`
	Suggestions []entity.Suggestion `json:"suggestions"`
}

// GetLocation returns the canonical location.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.current(), "")
}

// ClearLocation resets the location.
func (h *LocationHandler) ClearLocation(c echo.Context) error {
	h.store.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, h.current(), "Location cleared")
}

// OpenPrompt marks the location-selection prompt as shown.
func (h *LocationHandler) OpenPrompt(c echo.Context) error {
	h.store.OpenPrompt()

	return response.Success(c, http.StatusOK, h.current(), "")
}

// SubmitPincode handles manual pincode entry.
func (h *LocationHandler) SubmitPincode(c echo.Context) error {
	var req SubmitPincodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.pincode.Submit(c.Request().Context(), req.Pincode); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.current(), "Location updated")
}

// Geolocate resolves the location from the device.
func (h *LocationHandler) Geolocate(c echo.Context) error {
	if _, err := h.geolocation.Locate(c.Request().Context()); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.current(), "Location updated")
}

// Suggestions returns predictive search results for the q query parameter.
func (h *LocationHandler) Suggestions(c echo.Context) error {
	resp := SuggestionsResponse{
		Available:   h.addressSearch.Available(),
		Placeholder: h.addressSearch.Placeholder(),
		Suggestions: []entity.Suggestion{},
	}
	if !resp.Available {
		return response.Success(c, http.StatusOK, resp, "")
	}

	suggestions, err := h.addressSearch.Suggest(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return handleAppError(c, err)
	}
	resp.Suggestions = suggestions

	return response.Success(c, http.StatusOK, resp, "")
}

// SelectPlace submits the location behind a suggestion.
func (h *LocationHandler) SelectPlace(c echo.Context) error {
	if _, err := h.addressSearch.Select(c.Request().Context(), c.Param("placeId")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.current(), "Location updated")
}

// ListSavedAddresses returns the shopper's saved addresses. Requires authentication.
func (h *LocationHandler) ListSavedAddresses(c echo.Context) error {
	addresses, err := h.savedAddresses.List(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// SelectSavedAddress submits a saved address. Requires authentication.
func (h *LocationHandler) SelectSavedAddress(c echo.Context) error {
	_, err := h.savedAddresses.Select(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.current(), "Location updated")
}

func (h *LocationHandler) current() LocationResponse {
	resp := LocationResponse{
		HasLocation: h.store.HasLocation(),
		PromptOpen:  h.store.PromptOpen(),
	}
	if location, ok := h.store.Current(); ok {
		resp.Location = &location
	}

	return resp
}
