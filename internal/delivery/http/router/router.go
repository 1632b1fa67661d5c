// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler       *handler.LocationHandler
	ServiceabilityHandler *handler.ServiceabilityHandler
	SurfaceHandler        *handler.SurfaceHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler       *handler.LocationHandler
	serviceabilityHandler *handler.ServiceabilityHandler
	surfaceHandler        *handler.SurfaceHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:       params.LocationHandler,
		serviceabilityHandler: params.ServiceabilityHandler,
		surfaceHandler:        params.SurfaceHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	locationGroup := e.Group("/location")
	{
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.DELETE("", r.locationHandler.ClearLocation)
		locationGroup.POST("/prompt", r.locationHandler.OpenPrompt)
		locationGroup.PUT("/pincode", r.locationHandler.SubmitPincode)
		locationGroup.POST("/geolocate", r.locationHandler.Geolocate)
		locationGroup.GET("/suggestions", r.locationHandler.Suggestions)
		locationGroup.POST("/places/:placeId", r.locationHandler.SelectPlace)
	}

	// Saved addresses need the shopper's session
	savedGroup := locationGroup.Group("/saved-addresses")
	savedGroup.Use(r.authMiddleware.Authenticate)
	{
		savedGroup.GET("", r.locationHandler.ListSavedAddresses)
		savedGroup.POST("/:id", r.locationHandler.SelectSavedAddress)
	}

	e.GET("/serviceability", r.serviceabilityHandler.GetVerdict)
	e.GET("/serviceability/:pincode", r.serviceabilityHandler.CheckPincode)

	surfaceGroup := e.Group("/surfaces")
	{
		surfaceGroup.POST("", r.surfaceHandler.MountSurface)
		surfaceGroup.GET("/:id", r.surfaceHandler.GetSurface)
		surfaceGroup.DELETE("/:id", r.surfaceHandler.UnmountSurface)
	}

	e.GET("/delivery/estimate", r.surfaceHandler.Estimate)
}
