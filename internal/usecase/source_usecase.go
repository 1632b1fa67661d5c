package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// GeolocationUsecase resolves the shopper's location from the device.
type GeolocationUsecase interface {
	// Locate reads the device position, reverse geocodes it and submits the result to the store.
	Locate(ctx context.Context) (*entity.Location, error)
}

// AddressSearchUsecase resolves the shopper's location through predictive address search.
type AddressSearchUsecase interface {
	// Available reports whether the search provider is configured and loaded.
	Available() bool

	// Placeholder is the hint shown in the search input.
	Placeholder() string

	// Suggest returns suggestions for query. Short queries return no suggestions without a provider call.
	Suggest(ctx context.Context, query string) ([]entity.Suggestion, error)

	// Select looks up a suggestion and submits its location to the store.
	Select(ctx context.Context, placeID string) (*entity.Location, error)
}

// PincodeUsecase resolves the shopper's location from a manually entered pincode.
type PincodeUsecase interface {
	// Sanitize cleans raw keystrokes into at most six digits.
	Sanitize(raw string) string

	// Submit validates the pincode and submits it to the store.
	Submit(ctx context.Context, raw string) (*entity.Location, error)
}

// SavedAddressUsecase resolves the shopper's location from an address saved in their account.
type SavedAddressUsecase interface {
	// List returns the saved addresses, default first.
	List(ctx context.Context, session *service.Session) ([]entity.SavedAddress, error)

	// Select submits the saved address with the given id to the store.
	Select(ctx context.Context, session *service.Session, addressID string) (*entity.Location, error)
}
