package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LocationObserver is notified after every store mutation. A nil location means "no location".
type LocationObserver func(location *entity.Location)

// LocationStore owns the canonical shopper location. Update and Clear are the only write path;
// everything else observes.
type LocationStore interface {
	// Current returns a copy of the canonical location and whether one is set.
	Current() (entity.Location, bool)

	// HasLocation is derived from Current on every call.
	HasLocation() bool

	// Update replaces the location, closes the selection prompt and persists the new value.
	// Persistence failures are logged, never returned.
	Update(ctx context.Context, candidate entity.Location)

	// Clear resets the location and removes the persisted record.
	Clear(ctx context.Context)

	// Restore loads the persisted record. Absent or corrupt data leaves the store empty.
	Restore(ctx context.Context)

	// OpenPrompt marks the location-selection prompt as shown.
	OpenPrompt()

	// ClosePrompt hides the location-selection prompt.
	ClosePrompt()

	// PromptOpen reports whether the location-selection prompt is shown.
	PromptOpen() bool

	// Subscribe registers an observer and returns a function that removes it.
	Subscribe(observer LocationObserver) (unsubscribe func())
}
