package kernel_test

import (
	"fmt"
	"testing"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeolocation(t *testing.T) {
	t.Run("should create valid geolocation", func(t *testing.T) {
		loc, err := kernel.NewGeolocation(3.1390, 101.6869, 12.5)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InDelta(t, 3.1390, loc.Latitude(), 1e-9)
		assert.InDelta(t, 101.6869, loc.Longitude(), 1e-9)
		assert.InDelta(t, 12.5, loc.AccuracyMeters(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			lat, lng float64
		}{
			{-90, -180},
			{90, 180},
			{0, 0},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("lat=%.0f lng=%.0f", tc.lat, tc.lng), func(t *testing.T) {
				_, err := kernel.NewGeolocation(tc.lat, tc.lng, 5)
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		testCases := []struct {
			name          string
			lat, lng, acc float64
		}{
			{"latitude too low", -90.1, 0, 5},
			{"latitude too high", 90.1, 0, 5},
			{"longitude too low", 0, -180.1, 5},
			{"longitude too high", 0, 180.1, 5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeolocation(tc.lat, tc.lng, tc.acc)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("should reject unbounded accuracy", func(t *testing.T) {
		for _, acc := range []float64{0, -1, 100.1, 1000} {
			t.Run(fmt.Sprintf("accuracy=%.1f", acc), func(t *testing.T) {
				_, err := kernel.NewGeolocation(3.1390, 101.6869, acc)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeolocation_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Geolocation

		err := loc.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeolocationIsNotConstructed, err)
	})
}

func TestGeolocation_IsEqual(t *testing.T) {
	loc1, err := kernel.NewGeolocation(3.1390, 101.6869, 12.5)
	require.NoError(t, err)
	loc2, err := kernel.NewGeolocation(3.1390, 101.6869, 12.5)
	require.NoError(t, err)
	loc3, err := kernel.NewGeolocation(3.1390, 101.6869, 13.0)
	require.NoError(t, err)

	assert.True(t, loc1.IsEqual(loc2))
	assert.False(t, loc1.IsEqual(loc3))
}

func TestMoney(t *testing.T) {
	t.Run("should create valid money", func(t *testing.T) {
		total, err := kernel.NewMoney(4250, "MYR")

		require.NoError(t, err)
		require.NoError(t, total.Validate())
		assert.Equal(t, int64(4250), total.AmountCents())
		assert.Equal(t, "MYR", total.Currency())
		assert.Equal(t, "MYR 42.50", total.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "MYR")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject malformed currency", func(t *testing.T) {
		for _, currency := range []string{"", "M", "MYRX"} {
			_, err := kernel.NewMoney(100, currency)
			require.Error(t, err)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var total kernel.Money

		err := total.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
