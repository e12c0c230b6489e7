package ledger

import (
	"context"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// Debit checks that the current account can afford cost and takes it, all
// under one lock so no other operation can move the balance between the
// check and the write. Fails with ErrNoCurrentAccount when nobody is logged
// in and with an insufficient-balance error when the balance does not cover
// cost. The returned account is a snapshot.
//
// Like UpdateBalance, the debit reaches memory before the store; a failed
// durable write is surfaced alongside the updated snapshot.
func (l *Ledger) Debit(ctx context.Context, cost int64) (*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return nil, errs.ErrNoCurrentAccount
	}
	if !l.current.CanAfford(cost) {
		return nil, errs.NewInsufficientBalanceError(
			l.current.ID,
			entity.FormatTenths(cost),
			l.current.FormattedBalance(),
		)
	}

	l.current.ApplyDelta(-cost)

	if err := l.persistAccounts(ctx); err != nil {
		l.logger.Error("Failed to persist account set after debit", map[string]any{
			"accountId": l.current.ID,
			"cost":      entity.FormatTenths(cost),
			"error":     err.Error(),
		})
		return snapshot(l.current), err
	}
	if err := l.persistCurrent(ctx); err != nil {
		l.logger.Error("Failed to persist current account after debit", map[string]any{
			"accountId": l.current.ID,
			"cost":      entity.FormatTenths(cost),
			"error":     err.Error(),
		})
		return snapshot(l.current), err
	}

	l.logger.Info("Balance debited", map[string]any{
		"accountId": l.current.ID,
		"cost":      entity.FormatTenths(cost),
		"balance":   l.current.FormattedBalance(),
	})
	return snapshot(l.current), nil
}
