package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewAccount(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		acct, err := NewAccount(1, "Skylar", "skylar@example.com", "", 10000, fixedTime)
		require.NoError(t, err)

		assert.Equal(t, "Skylar", acct.Name)
		assert.Equal(t, "1000.0", acct.FormattedBalance())
		assert.Equal(t, "0.0", acct.FormattedEarnings())
		assert.Equal(t, fixedTime, acct.CreatedAt)
	})

	t.Run("trims name and email", func(t *testing.T) {
		acct, err := NewAccount(1, "  Skylar  ", " skylar@example.com ", "", 10000, fixedTime)
		require.NoError(t, err)
		assert.Equal(t, "Skylar", acct.Name)
		assert.Equal(t, "skylar@example.com", acct.Email)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		testCases := []struct {
			name     string
			email    string
			expected error
		}{
			{"", "skylar@example.com", errs.ErrEmptyName},
			{"   ", "skylar@example.com", errs.ErrEmptyName},
			{"Skylar", "", errs.ErrEmptyEmail},
			{"Skylar", "not-an-email", errs.ErrInvalidEmail},
			{"Skylar", "a@b", errs.ErrInvalidEmail},
			{"Skylar", "a b@c.com", errs.ErrInvalidEmail},
		}

		for _, tc := range testCases {
			_, err := NewAccount(1, tc.name, tc.email, "", 10000, fixedTime)
			assert.ErrorIs(t, err, tc.expected)
		}
	})
}

func TestApplyDelta(t *testing.T) {
	acct, err := NewAccount(1, "Skylar", "skylar@example.com", "", 10000, fixedTime)
	require.NoError(t, err)

	// Debit moves balance only
	acct.ApplyDelta(-100)
	assert.Equal(t, "990.0", acct.FormattedBalance())
	assert.Equal(t, "0.0", acct.FormattedEarnings())

	// Credit moves both
	acct.ApplyDelta(250)
	assert.Equal(t, "1015.0", acct.FormattedBalance())
	assert.Equal(t, "25.0", acct.FormattedEarnings())

	// No floor on debits; earnings never decrease
	acct.ApplyDelta(-50000)
	assert.Equal(t, "-3985.0", acct.FormattedBalance())
	assert.Equal(t, "25.0", acct.FormattedEarnings())
}

func TestTotalEarningsNonDecreasing(t *testing.T) {
	acct, err := NewAccount(1, "Skylar", "skylar@example.com", "", 10000, fixedTime)
	require.NoError(t, err)

	deltas := []int64{-100, 250, -500, 1, -10000, 100, 0, -1}
	previous := acct.TotalEarnings()
	for _, delta := range deltas {
		acct.ApplyDelta(delta)
		assert.GreaterOrEqual(t, acct.TotalEarnings(), previous)
		previous = acct.TotalEarnings()
	}
	assert.Equal(t, int64(351), acct.TotalEarnings())
}

func TestCaseInsensitiveMatching(t *testing.T) {
	acct, err := NewAccount(1, "Skylar", "Skylar@Example.com", "", 10000, fixedTime)
	require.NoError(t, err)

	assert.True(t, acct.MatchesEmail("skylar@example.com"))
	assert.True(t, acct.MatchesEmail(" SKYLAR@EXAMPLE.COM "))
	assert.False(t, acct.MatchesEmail("other@example.com"))

	assert.True(t, acct.MatchesName("skylar"))
	assert.True(t, acct.MatchesName("SKYLAR "))
	assert.False(t, acct.MatchesName("skyler"))
}

func TestRecordRoundTrip(t *testing.T) {
	acct, err := NewAccount(1740830400000, "Skylar", "skylar@example.com", "data:image/png;base64,xyz", 10000, fixedTime)
	require.NoError(t, err)
	acct.ApplyDelta(-100)
	acct.ApplyDelta(250)

	payload, err := json.Marshal(acct.Record())
	require.NoError(t, err)

	var record AccountRecord
	require.NoError(t, json.Unmarshal(payload, &record))
	assert.Equal(t, 1015.0, record.Balance)
	assert.Equal(t, 25.0, record.TotalEarnings)

	restored := FromRecord(record)
	assert.Equal(t, acct.ID, restored.ID)
	assert.Equal(t, acct.Balance(), restored.Balance())
	assert.Equal(t, acct.TotalEarnings(), restored.TotalEarnings())
	assert.Equal(t, acct.Avatar, restored.Avatar)
	assert.True(t, acct.CreatedAt.Equal(restored.CreatedAt))
}

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()
	require.Len(t, tiers, 5)

	var weightSum float64
	for _, tier := range tiers {
		weightSum += tier.Weight
	}
	assert.InDelta(t, 1.0, weightSum, 1e-9)

	mythic, ok := TierByName(TierMythic)
	require.True(t, ok)
	assert.Equal(t, int64(250), mythic.Payout)

	_, ok = TierByName("celestial")
	assert.False(t, ok)
}
