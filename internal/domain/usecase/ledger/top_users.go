package ledger

import (
	"iter"
	"sort"

	"github.com/skylar-games/case-opener/internal/domain/entity"
)

// RankedAccount is an account annotated with its 1-based leaderboard rank
type RankedAccount struct {
	Account *entity.Account
	Rank    int
}

// TopUsers returns a lazy, restartable sequence of all accounts ordered by
// lifetime earnings descending. Ties keep insertion order (stable sort).
// Each restart of the sequence snapshots the ledger afresh; the yielded
// accounts are copies, detached from the live entries.
func (l *Ledger) TopUsers() iter.Seq[RankedAccount] {
	return func(yield func(RankedAccount) bool) {
		l.mu.Lock()
		sorted := make([]*entity.Account, 0, len(l.accounts))
		for _, acct := range l.accounts {
			sorted = append(sorted, snapshot(acct))
		}
		l.mu.Unlock()

		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalEarnings() > sorted[j].TotalEarnings()
		})

		for i, acct := range sorted {
			if !yield(RankedAccount{Account: acct, Rank: i + 1}) {
				return
			}
		}
	}
}

// TopN collects the first n ranked accounts; n <= 0 means all of them
func (l *Ledger) TopN(n int) []RankedAccount {
	var top []RankedAccount
	for ranked := range l.TopUsers() {
		top = append(top, ranked)
		if n > 0 && len(top) == n {
			break
		}
	}
	return top
}
