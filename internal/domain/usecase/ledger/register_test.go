package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account and makes it current", func(t *testing.T) {
		l, store, _ := newTestLedger(t)

		acct, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		assert.Equal(t, "1000.0", acct.FormattedBalance())
		assert.Equal(t, "0.0", acct.FormattedEarnings())
		assert.Equal(t, acct.ID, l.Current().ID)
		assert.Equal(t, 1, l.Size())

		// Both records persisted
		_, err = store.Get(ctx, "accounts")
		assert.NoError(t, err)
		_, err = store.Get(ctx, "current_account")
		assert.NoError(t, err)
	})

	t.Run("assigns monotonic time-based IDs", func(t *testing.T) {
		l, _, clk := newTestLedger(t)

		first, err := l.Register(ctx, "One", "one@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, uint64(clk.now.UnixMilli()), first.ID)

		// Same millisecond: the ID still moves forward
		second, err := l.Register(ctx, "Two", "two@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("rejects duplicate email ignoring case", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		_, err = l.Register(ctx, "Someone", "SKYLAR@Example.COM", "")
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		assert.True(t, errs.IsValidationError(err))
		assert.Equal(t, 1, l.Size())
	})

	t.Run("rejects duplicate name ignoring case", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		_, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
		require.NoError(t, err)

		_, err = l.Register(ctx, "sKyLaR", "other@example.com", "")
		assert.ErrorIs(t, err, errs.ErrDuplicateName)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		_, err := l.Register(ctx, "", "skylar@example.com", "")
		assert.ErrorIs(t, err, errs.ErrEmptyName)

		_, err = l.Register(ctx, "Skylar", "", "")
		assert.ErrorIs(t, err, errs.ErrEmptyEmail)

		_, err = l.Register(ctx, "Skylar", "not-an-email", "")
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)

		assert.Equal(t, 0, l.Size())
	})

	t.Run("propagates quota errors from the store", func(t *testing.T) {
		l, store, clk := newTestLedger(t)
		quotaErr := errs.NewStorageError("set", "accounts", errs.ErrStorageQuota)
		faulty := &faultyStore{KVStore: store, failKey: "accounts", failErr: quotaErr}
		l2 := newLedgerOver(t, faulty, clk)

		_, err := l2.Register(ctx, "Skylar", "skylar@example.com", "")
		assert.True(t, errs.IsStorageQuotaError(err))

		// The pristine ledger over the same backing store sees nothing
		assert.Equal(t, 0, l.Size())
	})
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	l, store, clk := newTestLedger(t)

	registered, err := l.Register(ctx, "Skylar", "skylar@example.com", "")
	require.NoError(t, err)
	_, err = l.UpdateBalance(ctx, 250)
	require.NoError(t, err)

	// A fresh ledger over the same store restores the set and the pointer
	reloaded := newLedgerOver(t, store, clk)
	require.Equal(t, 1, reloaded.Size())

	current := reloaded.Current()
	require.NotNil(t, current)
	assert.Equal(t, registered.ID, current.ID)
	assert.Equal(t, "1025.0", current.FormattedBalance())
	assert.Equal(t, "25.0", current.FormattedEarnings())

	// The restored current entry is the set entry: mutating it through the
	// current account shows up in the ranked set too
	_, err = reloaded.UpdateBalance(ctx, -250)
	require.NoError(t, err)
	top := reloaded.TopN(1)
	require.Len(t, top, 1)
	assert.Equal(t, "1000.0", top[0].Account.FormattedBalance())
}
