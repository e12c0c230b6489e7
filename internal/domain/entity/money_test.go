package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1000", 10000},
			{"0.1", 1},
			{"25", 250},
			{"10.5", 105},
			{"-5000", -50000},
			{"-0.1", -1},
			{"0", 0},
			{"0.0", 0},
			{"10.", 100},
			{" 10 ", 100},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				tenths, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, tenths)
			})
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "empty string"},
			{"   ", "whitespace only"},
			{"-", "bare sign"},
			{"1.25", "two decimal places"},
			{"abc", "non-numeric"},
			{"1.0.0", "multiple decimal points"},
			{"1,5", "comma separator"},
			{"$10", "currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestFormatTenths(t *testing.T) {
	testCases := []struct {
		tenths   int64
		expected string
	}{
		{10000, "1000.0"},
		{9900, "990.0"},
		{10150, "1015.0"},
		{250, "25.0"},
		{1, "0.1"},
		{0, "0.0"},
		{-40000, "-4000.0"},
		{-1, "-0.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatTenths(tc.tenths))
		})
	}
}

func TestCoinsRoundTrip(t *testing.T) {
	for _, tenths := range []int64{0, 1, 250, 9900, 10150, -40000} {
		assert.Equal(t, tenths, CoinsToTenths(TenthsToCoins(tenths)))
	}

	// Values that drifted past one decimal place round back onto the grid
	assert.Equal(t, int64(9999), CoinsToTenths(999.9000000000001))
	assert.Equal(t, int64(1), CoinsToTenths(0.10000000000000002))
}
