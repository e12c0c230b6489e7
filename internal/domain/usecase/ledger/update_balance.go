package ledger

import (
	"context"

	"github.com/skylar-games/case-opener/internal/domain/entity"
)

// UpdateBalance adds delta (in tenths) to the current account's balance and,
// for credits, to its lifetime earnings, then persists the account set and
// the current record. A no-op when nobody is logged in. The returned account
// is a snapshot.
//
// No overdraft floor is enforced here: a debit larger than the balance takes
// it negative. Callers commit to a wager only after checking affordability,
// so in practice the balance stays non-negative.
func (l *Ledger) UpdateBalance(ctx context.Context, delta int64) (*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		l.logger.Warn("Balance update without a current account ignored", map[string]any{
			"delta": entity.FormatTenths(delta),
		})
		return nil, nil
	}

	// Memory first, durable write second; the mutex keeps the pair atomic
	// with respect to other ledger operations.
	l.current.ApplyDelta(delta)

	if err := l.persistAccounts(ctx); err != nil {
		l.logger.Error("Failed to persist account set after balance update", map[string]any{
			"accountId": l.current.ID,
			"delta":     entity.FormatTenths(delta),
			"error":     err.Error(),
		})
		return snapshot(l.current), err
	}
	if err := l.persistCurrent(ctx); err != nil {
		l.logger.Error("Failed to persist current account after balance update", map[string]any{
			"accountId": l.current.ID,
			"delta":     entity.FormatTenths(delta),
			"error":     err.Error(),
		})
		return snapshot(l.current), err
	}

	l.logger.Info("Balance updated", map[string]any{
		"accountId":     l.current.ID,
		"delta":         entity.FormatTenths(delta),
		"balance":       l.current.FormattedBalance(),
		"totalEarnings": l.current.FormattedEarnings(),
	})
	return snapshot(l.current), nil
}
