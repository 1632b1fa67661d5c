package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type surfaceRegistry struct {
	store     usecase.LocationStore
	checker   usecase.ServiceabilityChecker
	estimator usecase.DeliveryEstimator
	logger    *slog.Logger

	mu       sync.RWMutex
	surfaces map[uuid.UUID]usecase.EstimateConsumer
}

// NewSurfaceRegistry creates the registry of mounted product surfaces.
func NewSurfaceRegistry(
	store usecase.LocationStore,
	checker usecase.ServiceabilityChecker,
	estimator usecase.DeliveryEstimator,
	logger *slog.Logger,
) usecase.SurfaceUsecase {
	return &surfaceRegistry{
		store:     store,
		checker:   checker,
		estimator: estimator,
		logger:    logger,
		surfaces:  make(map[uuid.UUID]usecase.EstimateConsumer),
	}
}

// Mount creates a consumer for productID and returns its id with the initial display.
func (r *surfaceRegistry) Mount(
	ctx context.Context,
	productID entity.ProductID,
	variant usecase.BannerVariant,
) (uuid.UUID, usecase.Display) {
	consumer := newEstimateConsumer(ctx, productID, variant, r.store, r.checker, r.estimator, r.logger)
	id := uuid.New()

	r.mu.Lock()
	r.surfaces[id] = consumer
	r.mu.Unlock()

	r.logger.Debug("Surface mounted",
		slog.String("surface_id", id.String()),
		slog.Int64("product_id", int64(productID)),
		slog.String("variant", string(variant)),
	)

	return id, consumer.Display()
}

func (r *surfaceRegistry) Display(id uuid.UUID) (usecase.Display, error) {
	r.mu.RLock()
	consumer, ok := r.surfaces[id]
	r.mu.RUnlock()

	if !ok {
		return usecase.Display{}, domainerrors.ErrSurfaceNotFound
	}

	return consumer.Display(), nil
}

func (r *surfaceRegistry) Unmount(id uuid.UUID) error {
	r.mu.Lock()
	consumer, ok := r.surfaces[id]
	delete(r.surfaces, id)
	r.mu.Unlock()

	if !ok {
		return domainerrors.ErrSurfaceNotFound
	}

	consumer.Close()
	r.logger.Debug("Surface unmounted", slog.String("surface_id", id.String()))

	return nil
}

func (r *surfaceRegistry) Close() {
	r.mu.Lock()
	surfaces := r.surfaces
	r.surfaces = make(map[uuid.UUID]usecase.EstimateConsumer)
	r.mu.Unlock()

	for _, consumer := range surfaces {
		consumer.Close()
	}

	r.logger.Info("Closed mounted surfaces", slog.Int("count", len(surfaces)))
}
