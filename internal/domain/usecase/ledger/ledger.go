package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	errs "github.com/skylar-games/case-opener/internal/domain/error"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
	"github.com/skylar-games/case-opener/internal/domain/port/persistence"
)

// Ledger owns the account set and the current-account pointer. All mutations
// go through it: in-memory state is updated first under the mutex, the
// durable write follows in the same step. A failed write leaves memory ahead
// of the store; the next startup re-syncs from whatever the store holds, and
// writes are never retried automatically.
type Ledger struct {
	mu              sync.Mutex
	store           persistence.KVStore
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	startingBalance int64

	accounts []*entity.Account
	current  *entity.Account
	lastID   uint64
}

// New creates a ledger and loads the persisted account set and current
// pointer from the store.
func New(
	ctx context.Context,
	store persistence.KVStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingBalance int64,
) (*Ledger, error) {
	l := &Ledger{
		store:           store,
		timeProvider:    timeProvider,
		logger:          logger,
		startingBalance: startingBalance,
	}
	if err := l.load(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) load(ctx context.Context) error {
	data, err := l.store.Get(ctx, persistence.KeyAccounts)
	switch {
	case errs.IsNotFoundError(err):
		// First run, nothing persisted yet
	case err != nil:
		return fmt.Errorf("loading account set: %w", err)
	default:
		var records []entity.AccountRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("decoding account set: %w", err)
		}
		for _, record := range records {
			acct := entity.FromRecord(record)
			l.accounts = append(l.accounts, acct)
			if acct.ID > l.lastID {
				l.lastID = acct.ID
			}
		}
	}

	data, err = l.store.Get(ctx, persistence.KeyCurrentAccount)
	switch {
	case errs.IsNotFoundError(err):
		// Nobody was logged in
	case err != nil:
		return fmt.Errorf("loading current account: %w", err)
	default:
		var record entity.AccountRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("decoding current account: %w", err)
		}
		// Point at the set entry so later mutations hit both views
		l.current = l.findByID(record.ID)
	}

	l.logger.Info("Ledger loaded", map[string]any{
		"accounts":     len(l.accounts),
		"hasCurrent":   l.current != nil,
	})
	return nil
}

func (l *Ledger) findByID(id uint64) *entity.Account {
	for _, acct := range l.accounts {
		if acct.ID == id {
			return acct
		}
	}
	return nil
}

// nextID assigns a monotonic time-based identifier: unix milliseconds,
// bumped past the previous maximum when two registrations land in the same
// millisecond.
func (l *Ledger) nextID() uint64 {
	id := uint64(l.timeProvider.Now().UnixMilli())
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// persistAccounts writes the full account set. Callers hold the mutex.
func (l *Ledger) persistAccounts(ctx context.Context) error {
	records := make([]entity.AccountRecord, 0, len(l.accounts))
	for _, acct := range l.accounts {
		records = append(records, acct.Record())
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding account set: %w", err)
	}
	return l.store.Set(ctx, persistence.KeyAccounts, data)
}

// persistCurrent writes the current-account snapshot. Callers hold the mutex.
func (l *Ledger) persistCurrent(ctx context.Context) error {
	if l.current == nil {
		return l.store.Delete(ctx, persistence.KeyCurrentAccount)
	}
	data, err := json.Marshal(l.current.Record())
	if err != nil {
		return fmt.Errorf("encoding current account: %w", err)
	}
	return l.store.Set(ctx, persistence.KeyCurrentAccount, data)
}

// snapshot copies an account so callers never hold a pointer into the
// mutex-guarded state. All exported methods return snapshots; the live
// entries never leave the ledger.
func snapshot(a *entity.Account) *entity.Account {
	if a == nil {
		return nil
	}
	copied := *a
	return &copied
}

// Current returns a snapshot of the logged-in account, or nil when nobody is
func (l *Ledger) Current() *entity.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return snapshot(l.current)
}

// Size returns the number of registered accounts
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accounts)
}

// ClearAll is the destructive reset: it empties the account set, clears the
// current pointer and removes both persisted records. All or nothing from
// the caller's point of view; confirmation is the boundary's concern.
func (l *Ledger) ClearAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cleared := len(l.accounts)
	l.accounts = nil
	l.current = nil
	l.lastID = 0

	if err := l.store.Delete(ctx, persistence.KeyAccounts); err != nil {
		return err
	}
	if err := l.store.Delete(ctx, persistence.KeyCurrentAccount); err != nil {
		return err
	}

	l.logger.Warn("All account data cleared", map[string]any{
		"accountsRemoved": cleared,
	})
	return nil
}
