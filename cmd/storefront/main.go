package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/middleware"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/backend"
	"storefront/internal/infra/device"
	"storefront/internal/infra/geo"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/blobstore"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type locationLifecycleParams struct {
	fx.In
	fx.Lifecycle

	Store    usecase.LocationStore
	Checker  usecase.ServiceabilityChecker
	Surfaces usecase.SurfaceUsecase
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			manageLocation,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		blobstore.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			blobstore.NewLocationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			backend.ServiceabilityAPI,
			backend.DeliveryAPI,
			backend.AccountAPI,
			geo.NewProvider,
			device.NewStaticLocator,
			auth.NewSessionReader,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationStore,
			impl.NewServiceabilityChecker,
			impl.NewDeliveryEstimator,
			impl.NewSurfaceRegistry,
			impl.NewGeolocationSource,
			impl.NewAddressSearchSource,
			impl.NewPincodeSource,
			impl.NewSavedAddressSource,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewServiceabilityHandler,
			handler.NewSurfaceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// manageLocation restores the persisted location once the checker is subscribed,
// and tears down surfaces and in-flight checks on shutdown.
func manageLocation(params locationLifecycleParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Store.Restore(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			params.Surfaces.Close()
			params.Checker.Close()
			params.Logger.Info("Location services stopped")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
