package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

func TestUpdateBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("case opening scenario", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		// Wager: base cost 10 at multiplier 1
		acct, err := l.UpdateBalance(ctx, -100)
		require.NoError(t, err)
		assert.Equal(t, "990.0", acct.FormattedBalance())
		assert.Equal(t, "0.0", acct.FormattedEarnings())

		// Settlement: a single mythic draw pays 25
		acct, err = l.UpdateBalance(ctx, 250)
		require.NoError(t, err)
		assert.Equal(t, "1015.0", acct.FormattedBalance())
		assert.Equal(t, "25.0", acct.FormattedEarnings())
	})

	t.Run("no floor on debits", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		acct, err := l.UpdateBalance(ctx, -50000)
		require.NoError(t, err)
		assert.Equal(t, "-4000.0", acct.FormattedBalance())
		assert.Equal(t, "0.0", acct.FormattedEarnings())
	})

	t.Run("one decimal place after every call", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		for _, delta := range []int64{-100, 1, 5, 250, -3, 0, -10000} {
			acct, err := l.UpdateBalance(ctx, delta)
			require.NoError(t, err)
			assert.Regexp(t, `^-?\d+\.\d$`, acct.FormattedBalance())
			assert.Regexp(t, `^\d+\.\d$`, acct.FormattedEarnings())
		}
	})

	t.Run("no current account is a no-op", func(t *testing.T) {
		l, store, _ := newTestLedger(t)

		acct, err := l.UpdateBalance(ctx, 250)
		assert.NoError(t, err)
		assert.Nil(t, acct)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("quota failure keeps memory ahead of the store", func(t *testing.T) {
		l, store, clk := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		quotaErr := errs.NewStorageError("set", "accounts", errs.ErrStorageQuota)
		faulty := &faultyStore{KVStore: store, failKey: "accounts", failErr: quotaErr}
		l2 := newLedgerOver(t, faulty, clk)

		acct, err := l2.UpdateBalance(ctx, -100)
		assert.True(t, errs.IsStorageQuotaError(err))
		// In-memory state was updated first; the durable copy is stale.
		// Documented behavior: no rollback, no retry, re-sync on next load.
		require.NotNil(t, acct)
		assert.Equal(t, "990.0", acct.FormattedBalance())

		var records []entity.AccountRecord
		data, err := store.Get(ctx, "accounts")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &records))
		assert.Equal(t, 1000.0, records[0].Balance)
	})
}
