package ledger

import (
	"context"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// Login selects the account matching email (case-insensitively) as current
// and persists the pointer, returning a snapshot. Email format validation is
// the caller's concern.
func (l *Ledger) Login(ctx context.Context, email string) (*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var match *entity.Account
	for _, acct := range l.accounts {
		if acct.MatchesEmail(email) {
			match = acct
			break
		}
	}
	if match == nil {
		return nil, errs.ErrAccountNotFound
	}

	l.current = match
	if err := l.persistCurrent(ctx); err != nil {
		l.logger.Error("Failed to persist current account after login", map[string]any{
			"accountId": match.ID,
			"error":     err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Account logged in", map[string]any{
		"accountId": match.ID,
		"name":      match.Name,
	})
	return snapshot(match), nil
}

// Logout clears the current-account pointer. The account set is untouched.
func (l *Ledger) Logout(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return nil
	}

	accountID := l.current.ID
	l.current = nil
	if err := l.persistCurrent(ctx); err != nil {
		return err
	}

	l.logger.Info("Account logged out", map[string]any{
		"accountId": accountID,
	})
	return nil
}
