package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ServiceabilityAPI asks the backend whether an area is served at all.
type ServiceabilityAPI interface {
	CheckServiceability(ctx context.Context, pincode entity.Pincode) (*entity.ServiceabilityResult, error)
}

// DeliveryAPI asks the backend for a per-product delivery estimate.
// A business-level refusal is a successful call with Success=false; only transport failures are errors.
type DeliveryAPI interface {
	CheckDelivery(ctx context.Context, pincode entity.Pincode, productID entity.ProductID) (*entity.DeliveryEstimate, error)
}

// AccountAPI reads the authenticated shopper's saved addresses.
type AccountAPI interface {
	ListAddresses(ctx context.Context, accessToken string) ([]entity.SavedAddress, error)
}
