package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ServiceabilityHandler exposes the serviceability verdict.
type ServiceabilityHandler struct {
	checker usecase.ServiceabilityChecker
}

// NewServiceabilityHandler is the constructor for ServiceabilityHandler
func NewServiceabilityHandler(checker usecase.ServiceabilityChecker) *ServiceabilityHandler {
	return &ServiceabilityHandler{checker: checker}
}

// GetVerdict returns the verdict for the current location.
func (h *ServiceabilityHandler) GetVerdict(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.checker.Verdict(), "")
}

// CheckPincode runs a check for an explicit pincode and waits for the answer.
func (h *ServiceabilityHandler) CheckPincode(c echo.Context) error {
	pincode, err := entity.ParsePincode(c.Param("pincode"))
	if err != nil {
		return response.AppError(c, domainerrors.ErrInvalidPincode)
	}

	return response.Success(c, http.StatusOK, h.checker.Check(c.Request().Context(), pincode), "")
}
