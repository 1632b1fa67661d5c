package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SurfaceHandlerParams holds dependencies for SurfaceHandler, injected by Fx.
type SurfaceHandlerParams struct {
	fx.In

	Surfaces  usecase.SurfaceUsecase
	Estimator usecase.DeliveryEstimator
	Logger    *slog.Logger
}

// SurfaceHandler mounts product surfaces and serves raw delivery estimates.
type SurfaceHandler struct {
	surfaces  usecase.SurfaceUsecase
	estimator usecase.DeliveryEstimator
	logger    *slog.Logger
}

// NewSurfaceHandler is the constructor for SurfaceHandler
func NewSurfaceHandler(params SurfaceHandlerParams) *SurfaceHandler {
	return &SurfaceHandler{
		surfaces:  params.Surfaces,
		estimator: params.Estimator,
		logger:    params.Logger,
	}
}

// MountSurfaceRequest is the body for mounting a product surface.
type MountSurfaceRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Variant   string `json:"variant" validate:"omitempty,oneof=compact full"`
}

// SurfaceResponse is a mounted surface and its display.
type SurfaceResponse struct {
	ID      uuid.UUID       `json:"id"`
	Display usecase.Display `json:"display"`
}

// EstimateRequest is the query for a raw delivery estimate.
type EstimateRequest struct {
	Pincode   string `query:"pincode" validate:"required,pincode"`
	ProductID int64  `query:"product_id" validate:"required,gt=0"`
}

// MountSurface creates a consumer for a product.
func (h *SurfaceHandler) MountSurface(c echo.Context) error {
	var req MountSurfaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, display := h.surfaces.Mount(c.Request().Context(), entity.ProductID(req.ProductID), usecase.ParseBannerVariant(req.Variant))

	return response.Success(c, http.StatusCreated, SurfaceResponse{ID: id, Display: display}, "Surface mounted")
}

// GetSurface returns the current display of a surface.
func (h *SurfaceHandler) GetSurface(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid surface ID")
	}

	display, err := h.surfaces.Display(id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SurfaceResponse{ID: id, Display: display}, "")
}

// UnmountSurface tears a surface down.
func (h *SurfaceHandler) UnmountSurface(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid surface ID")
	}

	if err := h.surfaces.Unmount(id); err != nil {
		return handleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Estimate asks the backend for one (pincode, product) estimate. Nothing is cached.
func (h *SurfaceHandler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	estimate, err := h.estimator.CheckEstimate(c.Request().Context(), entity.Pincode(req.Pincode), entity.ProductID(req.ProductID))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, estimate, "")
}
