package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

type pincodeSource struct {
	store  usecase.LocationStore
	logger *slog.Logger
}

// NewPincodeSource creates the manual pincode adapter.
func NewPincodeSource(store usecase.LocationStore, logger *slog.Logger) usecase.PincodeUsecase {
	return &pincodeSource{
		store:  store,
		logger: logger,
	}
}

func (s *pincodeSource) Sanitize(raw string) string {
	return entity.SanitizePincodeInput(raw)
}

// Submit accepts raw only when it is exactly six digits.
func (s *pincodeSource) Submit(ctx context.Context, raw string) (*entity.Location, error) {
	pincode, err := entity.ParsePincode(raw)
	if err != nil {
		s.logger.Debug("Rejected pincode", slog.String("input", raw))

		return nil, domainerrors.ErrInvalidPincode
	}

	location := entity.Location{
		Pincode: pincode,
		Address: entity.PincodeLabel(pincode),
	}
	s.store.Update(ctx, location)

	return &location, nil
}
