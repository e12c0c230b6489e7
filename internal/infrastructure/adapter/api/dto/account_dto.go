package dto

import (
	"time"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	"github.com/skylar-games/case-opener/internal/domain/usecase/ledger"
)

// RegisterRequest is the body of POST /account/register
type RegisterRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Avatar string `json:"avatar"`
}

// LoginRequest is the body of POST /account/login
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// ProfileUpdateRequest is the body of PUT /account/profile. Absent fields
// are left untouched.
type ProfileUpdateRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// BalanceUpdateRequest is the body of POST /account/balance. Delta is a
// signed decimal string with at most one fractional digit, e.g. "-10" or
// "25.5".
type BalanceUpdateRequest struct {
	Delta string `json:"delta" binding:"required"`
}

// AccountResponse is the API shape of an account. Amounts are decimal
// strings with one fractional digit.
type AccountResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar,omitempty"`
	Balance       string `json:"balance"`
	TotalEarnings string `json:"totalEarnings"`
	CreatedAt     string `json:"createdAt"`
}

// NewAccountResponse converts an account entity to its API shape
func NewAccountResponse(acct *entity.Account) AccountResponse {
	return AccountResponse{
		ID:            acct.ID,
		Name:          acct.Name,
		Email:         acct.Email,
		Avatar:        acct.Avatar,
		Balance:       acct.FormattedBalance(),
		TotalEarnings: acct.FormattedEarnings(),
		CreatedAt:     acct.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// LeaderboardEntry is one row of GET /leaderboard
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar,omitempty"`
	TotalEarnings string `json:"totalEarnings"`
}

// NewLeaderboardEntry converts a ranked account to its API shape
func NewLeaderboardEntry(ranked ledger.RankedAccount) LeaderboardEntry {
	return LeaderboardEntry{
		Rank:          ranked.Rank,
		ID:            ranked.Account.ID,
		Name:          ranked.Account.Name,
		Avatar:        ranked.Account.Avatar,
		TotalEarnings: ranked.Account.FormattedEarnings(),
	}
}
