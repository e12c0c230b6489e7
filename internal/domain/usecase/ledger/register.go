package ledger

import (
	"context"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// Register creates a new account, makes it current and persists both the
// account set and the current pointer. The new account starts with the
// configured balance and zero lifetime earnings. The returned account is a
// snapshot.
func (l *Ledger) Register(ctx context.Context, name, email, avatar string) (*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, err := entity.NewAccount(l.nextID(), name, email, avatar, l.startingBalance, l.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	for _, existing := range l.accounts {
		if existing.MatchesEmail(acct.Email) {
			return nil, errs.ErrDuplicateEmail
		}
		if existing.MatchesName(acct.Name) {
			return nil, errs.ErrDuplicateName
		}
	}

	l.accounts = append(l.accounts, acct)
	l.current = acct

	if err := l.persistAccounts(ctx); err != nil {
		l.logger.Error("Failed to persist account set after registration", map[string]any{
			"accountId": acct.ID,
			"error":     err.Error(),
		})
		return nil, err
	}
	if err := l.persistCurrent(ctx); err != nil {
		l.logger.Error("Failed to persist current account after registration", map[string]any{
			"accountId": acct.ID,
			"error":     err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Account registered", map[string]any{
		"accountId": acct.ID,
		"name":      acct.Name,
		"balance":   acct.FormattedBalance(),
	})
	return snapshot(acct), nil
}
