package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

func TestDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("takes the cost and persists", func(t *testing.T) {
		l, store, _ := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		acct, err := l.Debit(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, "990.0", acct.FormattedBalance())
		assert.Equal(t, "0.0", acct.FormattedEarnings())

		_, err = store.Get(ctx, "accounts")
		assert.NoError(t, err)
	})

	t.Run("exact balance is affordable", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		acct, err := l.Debit(ctx, startingBalance)
		require.NoError(t, err)
		assert.Equal(t, "0.0", acct.FormattedBalance())
	})

	t.Run("insufficient balance leaves everything untouched", func(t *testing.T) {
		l, _, _ := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		acct, err := l.Debit(ctx, startingBalance+1)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, acct)
		assert.Equal(t, "1000.0", l.Current().FormattedBalance())
	})

	t.Run("no current account", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		acct, err := l.Debit(ctx, 100)
		assert.ErrorIs(t, err, errs.ErrNoCurrentAccount)
		assert.Nil(t, acct)
	})

	t.Run("persist failure surfaces with the debited snapshot", func(t *testing.T) {
		l, store, clk := newTestLedger(t)
		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		quotaErr := errs.NewStorageError("set", "accounts", errs.ErrStorageQuota)
		faulty := &faultyStore{KVStore: store, failKey: "accounts", failErr: quotaErr}
		l2 := newLedgerOver(t, faulty, clk)

		acct, err := l2.Debit(ctx, 100)
		assert.True(t, errs.IsStorageQuotaError(err))
		require.NotNil(t, acct)
		assert.Equal(t, "990.0", acct.FormattedBalance())
	})
}
