package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/skylar-games/case-opener/internal/domain/error"
)

// mapError translates driver errors into the domain's storage errors. The
// one distinction the ledger cares about is capacity: a full store becomes
// ErrStorageQuota so the boundary can tell the user to free space, anything
// else becomes ErrStorage.
func mapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("record %q %w", key, errs.NotFound)
	}

	msg := strings.ToLower(err.Error())
	switch {
	// SQLite reports a full database or filesystem with SQLITE_FULL
	// ("database or disk is full"); PostgreSQL raises 53100 "disk full"
	// and quota violations mention the word directly.
	case strings.Contains(msg, "disk is full"),
		strings.Contains(msg, "disk full"),
		strings.Contains(msg, "no space left"),
		strings.Contains(msg, "quota"):
		return errs.NewStorageError(op, key, fmt.Errorf("%w: %s", errs.ErrStorageQuota, err.Error()))
	default:
		return errs.NewStorageError(op, key, fmt.Errorf("%w: %s", errs.ErrStorage, err.Error()))
	}
}
