package ledger

import (
	"context"
	"strings"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// ProfileUpdate carries the optional profile fields. A nil field is left
// untouched; a set field is applied only if it differs from the current
// value.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
}

// UpdateProfile applies the provided fields to the current account. An edit
// that changes nothing is rejected rather than silently accepted, and a new
// name that collides case-insensitively with another account fails.
func (l *Ledger) UpdateProfile(ctx context.Context, update ProfileUpdate) (*entity.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return nil, errs.ErrNoCurrentAccount
	}

	var newName string
	changeName := false
	if update.Name != nil {
		newName = strings.TrimSpace(*update.Name)
		if newName == "" {
			return nil, errs.ErrEmptyName
		}
		changeName = newName != l.current.Name
		if changeName {
			for _, other := range l.accounts {
				if other != l.current && other.MatchesName(newName) {
					return nil, errs.ErrDuplicateName
				}
			}
		}
	}

	changeAvatar := update.Avatar != nil && *update.Avatar != l.current.Avatar

	if !changeName && !changeAvatar {
		return nil, errs.ErrNothingToUpdate
	}

	if changeName {
		l.current.Name = newName
	}
	if changeAvatar {
		l.current.Avatar = *update.Avatar
	}

	if err := l.persistAccounts(ctx); err != nil {
		return nil, err
	}
	if err := l.persistCurrent(ctx); err != nil {
		return nil, err
	}

	l.logger.Info("Profile updated", map[string]any{
		"accountId":     l.current.ID,
		"nameChanged":   changeName,
		"avatarChanged": changeAvatar,
	})
	return snapshot(l.current), nil
}
