package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

const (
	eventuallyWait = time.Second
	eventuallyTick = 5 * time.Millisecond
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{Key: "user_location"},
		Geo: &config.GeoConfig{
			Country:         "in",
			SearchMinLength: 3,
		},
		Device: &config.DeviceConfig{Timeout: 10 * time.Second},
	}
}

// newTestStore returns a store whose repository accepts every write.
func newTestStore(t *testing.T) usecase.LocationStore {
	t.Helper()

	repo := mockRepo.NewMockLocationRepository(t)
	repo.EXPECT().SaveLocation(mock.Anything, mock.Anything).Return(nil).Maybe()
	repo.EXPECT().DeleteLocation(mock.Anything).Return(nil).Maybe()

	return NewLocationStore(repo, newDiscardLogger())
}

func pincodeLocation(pincode string) entity.Location {
	return entity.Location{
		Pincode: entity.Pincode(pincode),
		Address: entity.PincodeLabel(entity.Pincode(pincode)),
	}
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
