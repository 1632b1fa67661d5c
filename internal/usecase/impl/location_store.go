package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type locationStore struct {
	repo   repository.LocationRepository
	logger *slog.Logger

	// writeMu serializes Update, Clear and Restore so observers see mutations in order.
	writeMu sync.Mutex

	mu         sync.RWMutex
	current    *entity.Location
	promptOpen bool

	observers observers[*entity.Location]
}

// NewLocationStore creates the store. It starts empty; Restore loads the persisted record.
func NewLocationStore(repo repository.LocationRepository, logger *slog.Logger) usecase.LocationStore {
	return &locationStore{
		repo:   repo,
		logger: logger,
	}
}

// Current returns a copy of the canonical location.
func (s *locationStore) Current() (entity.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return entity.Location{}, false
	}

	return copyLocation(*s.current), true
}

// HasLocation is derived from the current location, never stored.
func (s *locationStore) HasLocation() bool {
	location, ok := s.Current()

	return ok && location.HasLocation()
}

// Update replaces the canonical location. There is no field-level merge.
func (s *locationStore) Update(ctx context.Context, candidate entity.Location) {
	if candidate.Pincode != "" && !candidate.Pincode.Valid() {
		s.logger.Warn("Dropping malformed pincode from location update",
			slog.String("pincode", candidate.Pincode.String()),
		)
		candidate.Pincode = ""
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	stored := copyLocation(candidate)

	s.mu.Lock()
	s.current = &stored
	s.promptOpen = false
	s.mu.Unlock()

	if err := s.repo.SaveLocation(ctx, stored); err != nil {
		s.logger.Error("Failed to persist location", slog.Any("error", err))
	}

	s.logger.Info("Location updated",
		slog.String("pincode", stored.Pincode.String()),
		slog.Bool("has_coordinate", stored.Coordinate != nil),
		slog.String("city", stored.City),
	)

	s.publish(&stored)
}

// Clear resets the location and removes the persisted record.
func (s *locationStore) Clear(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.DeleteLocation(ctx); err != nil {
		s.logger.Error("Failed to remove persisted location", slog.Any("error", err))
	}

	s.logger.Info("Location cleared")

	s.publish(nil)
}

// Restore loads the persisted record. It never fails.
func (s *locationStore) Restore(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	location, err := s.repo.LoadLocation(ctx)
	switch {
	case errors.Is(err, repository.ErrLocationNotFound):
		s.logger.Debug("No persisted location")
		location = nil
	case err != nil:
		s.logger.Warn("Ignoring unreadable persisted location", slog.Any("error", err))
		location = nil
	}

	var restored *entity.Location
	if location != nil {
		copied := copyLocation(*location)
		restored = &copied
	}

	s.mu.Lock()
	s.current = restored
	s.mu.Unlock()

	if restored != nil {
		s.logger.Info("Location restored", slog.String("pincode", restored.Pincode.String()))
	}

	s.publish(restored)
}

// OpenPrompt marks the selection prompt as shown.
func (s *locationStore) OpenPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.promptOpen = true
}

// ClosePrompt hides the selection prompt.
func (s *locationStore) ClosePrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.promptOpen = false
}

// PromptOpen reports whether the selection prompt is shown.
func (s *locationStore) PromptOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.promptOpen
}

// Subscribe registers an observer.
func (s *locationStore) Subscribe(observer usecase.LocationObserver) func() {
	return s.observers.add(observer)
}

// publish notifies observers with a copy detached from store state.
func (s *locationStore) publish(location *entity.Location) {
	if location == nil {
		s.observers.notify(nil)

		return
	}

	detached := copyLocation(*location)
	s.observers.notify(&detached)
}

// copyLocation detaches the coordinate pointer so callers cannot mutate store state.
func copyLocation(location entity.Location) entity.Location {
	if location.Coordinate != nil {
		point := *location.Coordinate
		location.Coordinate = &point
	}

	return location
}
