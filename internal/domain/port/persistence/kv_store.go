package persistence

import "context"

// Record keys for the two logical records the ledger persists.
const (
	// KeyAccounts holds the serialized ordered account set
	KeyAccounts = "accounts"
	// KeyCurrentAccount holds the serialized current account snapshot
	KeyCurrentAccount = "current_account"
)

// KVStore is the durable key-value store behind the ledger. Implementations
// must map capacity failures to errs.ErrStorageQuota and all other failures
// to errs.ErrStorage so callers can tell the two apart; a missing key on Get
// is reported as errs.NotFound.
type KVStore interface {
	// Get returns the value stored under key
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
