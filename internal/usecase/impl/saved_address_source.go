package impl

import (
	"context"
	"log/slog"
	"sort"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type savedAddressSource struct {
	account service.AccountAPI
	store   usecase.LocationStore
	logger  *slog.Logger
}

// NewSavedAddressSource creates the saved-address adapter.
func NewSavedAddressSource(account service.AccountAPI, store usecase.LocationStore, logger *slog.Logger) usecase.SavedAddressUsecase {
	return &savedAddressSource{
		account: account,
		store:   store,
		logger:  logger,
	}
}

// List returns the default address first, then the rest ordered by distance from the
// current coordinate when one is known. Addresses without coordinates keep their order at the end.
func (s *savedAddressSource) List(ctx context.Context, session *service.Session) ([]entity.SavedAddress, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	addresses, err := s.account.ListAddresses(ctx, session.AccessToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			return nil, err
		}
		s.logger.Error("Failed to fetch saved addresses", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "failed to fetch saved addresses")
	}

	s.order(addresses)

	return addresses, nil
}

// Select maps the chosen address directly into a location.
func (s *savedAddressSource) Select(ctx context.Context, session *service.Session, addressID string) (*entity.Location, error) {
	addresses, err := s.List(ctx, session)
	if err != nil {
		return nil, err
	}

	for _, address := range addresses {
		if address.ID != addressID {
			continue
		}

		location := address.ToLocation()
		s.store.Update(ctx, location)

		return &location, nil
	}

	return nil, domainerrors.ErrAddressNotFound
}

func (s *savedAddressSource) order(addresses []entity.SavedAddress) {
	current, ok := s.store.Current()
	origin := current.Coordinate

	sort.SliceStable(addresses, func(i, j int) bool {
		a, b := addresses[i], addresses[j]
		if a.IsDefault != b.IsDefault {
			return a.IsDefault
		}
		if !ok || origin == nil {
			return false
		}

		da, okA := a.DistanceFrom(*origin)
		db, okB := b.DistanceFrom(*origin)
		switch {
		case okA && okB:
			return da < db
		default:
			return okA && !okB
		}
	})
}
