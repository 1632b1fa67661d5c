package device

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLocator_Granted(t *testing.T) {
	cfg := &config.Config{Device: &config.DeviceConfig{PermissionGranted: true, Latitude: 12.9716, Longitude: 77.5946}}
	locator := NewStaticLocator(cfg, slog.Default())

	position, err := locator.CurrentPosition(context.Background(), true, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 12.9716, position.Lat())
	assert.Equal(t, 77.5946, position.Lon())
}

func TestStaticLocator_Denied(t *testing.T) {
	cfg := &config.Config{Device: &config.DeviceConfig{}}
	locator := NewStaticLocator(cfg, slog.Default())

	_, err := locator.CurrentPosition(context.Background(), true, time.Second)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestStaticLocator_CancelledContext(t *testing.T) {
	cfg := &config.Config{Device: &config.DeviceConfig{PermissionGranted: true}}
	locator := NewStaticLocator(cfg, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locator.CurrentPosition(ctx, true, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
