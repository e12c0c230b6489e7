package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// emailPattern is deliberately loose: something before an @, something after,
// and a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Account represents a local player account. Name and email are unique
// case-insensitively across the account set; balance and totalEarnings are
// tenths of a coin and only move through the ledger.
type Account struct {
	ID            uint64    // Unique identifier, monotonic time-based, immutable
	Name          string    // Display name, mutable by the owner
	Email         string    // Login key, immutable after registration
	Avatar        string    // Optional data-URL encoded image
	balance       int64     // Balance in tenths (private, ledger-only mutation)
	totalEarnings int64     // Cumulative positive credits in tenths, never decreases
	CreatedAt     time.Time // When the account was registered
}

// NewAccount creates a registered account with the given starting balance.
// Name and email are validated here; uniqueness is the ledger's concern.
func NewAccount(id uint64, name, email, avatar string, startingBalance int64, now time.Time) (*Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, errs.ErrEmptyName
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	return &Account{
		ID:        id,
		Name:      name,
		Email:     email,
		Avatar:    avatar,
		balance:   startingBalance,
		CreatedAt: now,
	}, nil
}

// ValidateEmail checks that email is non-empty and address-shaped
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return errs.ErrInvalidEmail
	}
	return nil
}

// Balance returns the current balance in tenths
func (a *Account) Balance() int64 {
	return a.balance
}

// TotalEarnings returns the lifetime earnings in tenths
func (a *Account) TotalEarnings() int64 {
	return a.totalEarnings
}

// FormattedBalance renders the balance with one decimal place, e.g. "990.0"
func (a *Account) FormattedBalance() string {
	return FormatTenths(a.balance)
}

// FormattedEarnings renders totalEarnings with one decimal place
func (a *Account) FormattedEarnings() string {
	return FormatTenths(a.totalEarnings)
}

// ApplyDelta adds delta to the balance and, when the delta is a credit, to
// totalEarnings. Debits may take the balance negative: the ledger does not
// enforce a floor, affordability is checked by the caller before committing
// to a draw.
func (a *Account) ApplyDelta(delta int64) {
	a.balance += delta
	if delta > 0 {
		a.totalEarnings += delta
	}
}

// CanAfford reports whether the balance covers cost
func (a *Account) CanAfford(cost int64) bool {
	return a.balance >= cost
}

// MatchesEmail compares emails case-insensitively
func (a *Account) MatchesEmail(email string) bool {
	return strings.EqualFold(a.Email, strings.TrimSpace(email))
}

// MatchesName compares display names case-insensitively
func (a *Account) MatchesName(name string) bool {
	return strings.EqualFold(a.Name, strings.TrimSpace(name))
}

// AccountRecord is the persisted shape of an account: one element of the
// "accounts" record and the whole "current_account" record. Amounts are
// stored as coin numbers with one decimal place.
type AccountRecord struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Avatar        string  `json:"avatar,omitempty"`
	Balance       float64 `json:"balance"`
	TotalEarnings float64 `json:"totalEarnings"`
	CreatedAt     string  `json:"createdAt"`
}

// Record converts the account to its persisted shape
func (a *Account) Record() AccountRecord {
	return AccountRecord{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Avatar:        a.Avatar,
		Balance:       TenthsToCoins(a.balance),
		TotalEarnings: TenthsToCoins(a.totalEarnings),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromRecord rebuilds an account from its persisted shape. Timestamps that
// fail to parse fall back to the zero time rather than losing the account.
func FromRecord(r AccountRecord) *Account {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	return &Account{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Avatar:        r.Avatar,
		balance:       CoinsToTenths(r.Balance),
		totalEarnings: CoinsToTenths(r.TotalEarnings),
		CreatedAt:     createdAt,
	}
}
