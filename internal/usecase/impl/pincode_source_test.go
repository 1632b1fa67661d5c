package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPincodeSource_Sanitize(t *testing.T) {
	t.Parallel()

	source := NewPincodeSource(nil, newDiscardLogger())

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "400001", want: "400001"},
		{raw: "400 001", want: "400001"},
		{raw: "4000011234", want: "400001"},
		{raw: "ab12cd", want: "12"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, source.Sanitize(tt.raw))
		})
	}
}

func TestPincodeSource_Submit(t *testing.T) {
	store := newTestStore(t)
	source := NewPincodeSource(store, newDiscardLogger())

	location, err := source.Submit(context.Background(), "400001")
	require.NoError(t, err)
	assert.Equal(t, "Pincode: 400001", location.Address)
	assert.Nil(t, location.Coordinate)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, entity.Pincode("400001"), current.Pincode)
}

func TestPincodeSource_SubmitRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "40001", "4000012", "40000a", " 400001"} {
		t.Run(raw, func(t *testing.T) {
			store := newTestStore(t)
			source := NewPincodeSource(store, newDiscardLogger())

			_, err := source.Submit(context.Background(), raw)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPincode)
			assert.False(t, store.HasLocation())
		})
	}
}
