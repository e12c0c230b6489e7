package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidAmount       = 4002
	CodeInsufficientBalance = 4003
	CodeDuplicateEmail      = 4004
	CodeDuplicateName       = 4005
	CodeNothingToUpdate     = 4006
	CodeInvalidMultiplier   = 4007
	CodeAccountNotFound     = 4040
	CodeNoCurrentAccount    = 4041
	CodeSpinNotFound        = 4042
	CodeSpinInProgress      = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorage        = 5001
	CodeStorageQuota   = 5070
)

// Validation is the kind sentinel for all bad-input errors. Every concrete
// validation error below wraps it, so callers can match either the specific
// error or the whole family with errors.Is.
var Validation = errors.New("validation failed")

var (
	// ErrEmptyName is returned when a registration has no display name
	ErrEmptyName = fmt.Errorf("%w: name must not be empty", Validation)

	// ErrEmptyEmail is returned when a registration or login has no email
	ErrEmptyEmail = fmt.Errorf("%w: email must not be empty", Validation)

	// ErrInvalidEmail is returned when the email does not look like an address
	ErrInvalidEmail = fmt.Errorf("%w: malformed email address", Validation)

	// ErrDuplicateEmail is returned when the email is already registered
	// (comparison is case-insensitive)
	ErrDuplicateEmail = fmt.Errorf("%w: email already registered", Validation)

	// ErrDuplicateName is returned when the display name is already taken
	// (comparison is case-insensitive)
	ErrDuplicateName = fmt.Errorf("%w: name already taken", Validation)

	// ErrNothingToUpdate is returned when a profile edit changes no field
	ErrNothingToUpdate = fmt.Errorf("%w: no field differs from current profile", Validation)

	// ErrInvalidAmount is returned when an amount string is not a decimal
	// with at most one fractional digit
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount format", Validation)

	// ErrInvalidMultiplier is returned when the case multiplier is out of range
	ErrInvalidMultiplier = fmt.Errorf("%w: multiplier out of range", Validation)

	// ErrSpinInProgress is returned when a case is opened while another spin
	// has not settled yet
	ErrSpinInProgress = fmt.Errorf("%w: a spin is already in progress", Validation)
)

// NotFound is the kind sentinel for all lookup misses.
var NotFound = errors.New("not found")

var (
	// ErrAccountNotFound is returned when no account matches a login email
	ErrAccountNotFound = fmt.Errorf("account %w", NotFound)

	// ErrNoCurrentAccount is returned when an operation needs a logged-in
	// account and none is current
	ErrNoCurrentAccount = fmt.Errorf("current account %w: nobody is logged in", NotFound)

	// ErrSpinNotFound is returned when a spin ID does not match any session
	ErrSpinNotFound = fmt.Errorf("spin %w", NotFound)
)

var (
	// ErrInsufficientBalance is returned when the current balance cannot
	// cover the wager; checked strictly before any debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrStorage is returned when a durable write or read fails for any
	// reason other than capacity
	ErrStorage = errors.New("storage failure")

	// ErrStorageQuota is returned when a durable write fails because the
	// store is out of capacity; surfaced to the user as a blocking warning
	// and never retried automatically
	ErrStorageQuota = errors.New("storage quota exceeded")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns the standardized code for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicateName):
		return CodeDuplicateName
	case errors.Is(err, ErrNothingToUpdate):
		return CodeNothingToUpdate
	case errors.Is(err, ErrInvalidMultiplier):
		return CodeInvalidMultiplier
	case errors.Is(err, ErrSpinInProgress):
		return CodeSpinInProgress
	case errors.Is(err, Validation):
		return CodeValidation
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrNoCurrentAccount):
		return CodeNoCurrentAccount
	case errors.Is(err, ErrSpinNotFound):
		return CodeSpinNotFound
	case errors.Is(err, NotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrStorageQuota):
		return CodeStorageQuota
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError carries the wager and balance that failed the
// affordability check
type InsufficientBalanceError struct {
	AccountID uint64
	Cost      string
	Balance   string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for account %d: wager %s, available %s",
		e.AccountID, e.Cost, e.Balance)
}

// Is matches the ErrInsufficientBalance sentinel
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"account_id": e.AccountID,
		"cost":       e.Cost,
		"balance":    e.Balance,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient balance error
func NewInsufficientBalanceError(accountID uint64, cost, balance string) error {
	return &InsufficientBalanceError{
		AccountID: accountID,
		Cost:      cost,
		Balance:   balance,
	}
}

// StorageError wraps a failed durable read or write with the record key and
// operation that triggered it
type StorageError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for record %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"op":         e.Op,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewStorageError wraps err with the record key and operation
func NewStorageError(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

// IsValidationError checks if the error is any bad-input error
func IsValidationError(err error) bool {
	return errors.Is(err, Validation)
}

// IsNotFoundError checks if the error is any lookup miss
func IsNotFoundError(err error) bool {
	return errors.Is(err, NotFound)
}

// IsStorageQuotaError checks if the error is a capacity failure of the store
func IsStorageQuotaError(err error) bool {
	return errors.Is(err, ErrStorageQuota)
}
