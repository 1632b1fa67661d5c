package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryEstimator asks the backend for per-product delivery estimates. Nothing is cached.
type DeliveryEstimator interface {
	// CheckEstimate returns the backend's answer. Business refusals come back as Success=false
	// with a nil error; transport failures are returned as errors.
	CheckEstimate(ctx context.Context, pincode entity.Pincode, productID entity.ProductID) (entity.DeliveryEstimate, error)
}

// DisplayKind is what a product surface renders for delivery.
type DisplayKind string

const (
	// DisplayNone renders nothing.
	DisplayNone DisplayKind = "none"
	// DisplayNoLocation renders the "set your location" banner.
	DisplayNoLocation DisplayKind = "no_location"
	// DisplayUnserviceable renders the serviceability banner with the backend's message.
	DisplayUnserviceable DisplayKind = "unserviceable"
	// DisplayEstimate renders the estimated delivery date.
	DisplayEstimate DisplayKind = "estimate"
	// DisplayNotDeliverable renders the "not deliverable to this pincode" banner.
	DisplayNotDeliverable DisplayKind = "not_deliverable"
)

// BannerVariant selects the banner layout.
type BannerVariant string

const (
	// BannerCompact is used on cards and lists.
	BannerCompact BannerVariant = "compact"
	// BannerFull is used on detail views and carries the change-location affordance.
	BannerFull BannerVariant = "full"
)

// ParseBannerVariant defaults to compact for unknown values.
func ParseBannerVariant(s string) BannerVariant {
	if BannerVariant(s) == BannerFull {
		return BannerFull
	}

	return BannerCompact
}

// Display is the render state of one product surface.
type Display struct {
	Kind           DisplayKind              `json:"kind"`
	Variant        BannerVariant            `json:"variant"`
	ChangeLocation bool                     `json:"change_location"`
	Message        string                   `json:"message,omitempty"`
	Estimate       *entity.DeliveryEstimate `json:"estimate,omitempty"`
	// Reason keeps the backend or transport failure behind a not-deliverable display, for logs only.
	Reason string `json:"-"`
}

// EstimateConsumer is one mounted product surface.
type EstimateConsumer interface {
	ProductID() entity.ProductID
	Display() Display

	// Refresh re-evaluates the surface and issues a fresh estimate request when one applies.
	Refresh(ctx context.Context)

	// Close tears the surface down. Results arriving afterwards are dropped.
	Close()
}

// SurfaceUsecase owns the set of mounted product surfaces.
type SurfaceUsecase interface {
	Mount(ctx context.Context, productID entity.ProductID, variant BannerVariant) (uuid.UUID, Display)
	Display(id uuid.UUID) (Display, error)
	Unmount(id uuid.UUID) error

	// Close tears down every mounted surface.
	Close()
}
