package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type deliveryEstimator struct {
	api    service.DeliveryAPI
	logger *slog.Logger
}

// NewDeliveryEstimator creates the estimator. Every call goes to the backend.
func NewDeliveryEstimator(api service.DeliveryAPI, logger *slog.Logger) usecase.DeliveryEstimator {
	return &deliveryEstimator{
		api:    api,
		logger: logger,
	}
}

func (e *deliveryEstimator) CheckEstimate(
	ctx context.Context,
	pincode entity.Pincode,
	productID entity.ProductID,
) (entity.DeliveryEstimate, error) {
	if !pincode.Valid() {
		return entity.DeliveryEstimate{}, domainerrors.ErrInvalidPincode
	}

	estimate, err := e.api.CheckDelivery(ctx, pincode, productID)
	if err != nil {
		return entity.DeliveryEstimate{}, domainerrors.NewUpstreamError(err, "delivery check failed")
	}

	if !estimate.Success {
		e.logger.Debug("Product not deliverable",
			slog.String("pincode", pincode.String()),
			slog.Int64("product_id", int64(productID)),
			slog.String("reason", estimate.Error),
		)
	}

	return *estimate, nil
}
