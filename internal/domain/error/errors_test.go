package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationFamily(t *testing.T) {
	validationErrs := []error{
		ErrEmptyName,
		ErrEmptyEmail,
		ErrInvalidEmail,
		ErrDuplicateEmail,
		ErrDuplicateName,
		ErrNothingToUpdate,
		ErrInvalidAmount,
		ErrInvalidMultiplier,
		ErrSpinInProgress,
	}

	for _, err := range validationErrs {
		t.Run(err.Error(), func(t *testing.T) {
			assert.True(t, IsValidationError(err))
			assert.False(t, IsNotFoundError(err))
		})
	}
}

func TestNotFoundFamily(t *testing.T) {
	for _, err := range []error{ErrAccountNotFound, ErrNoCurrentAccount, ErrSpinNotFound} {
		t.Run(err.Error(), func(t *testing.T) {
			assert.True(t, IsNotFoundError(err))
			assert.False(t, IsValidationError(err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrDuplicateEmail, CodeDuplicateEmail},
		{ErrDuplicateName, CodeDuplicateName},
		{ErrNothingToUpdate, CodeNothingToUpdate},
		{ErrInvalidMultiplier, CodeInvalidMultiplier},
		{ErrSpinInProgress, CodeSpinInProgress},
		{ErrEmptyName, CodeValidation},
		{ErrInsufficientBalance, CodeInsufficientBalance},
		{ErrNoCurrentAccount, CodeNoCurrentAccount},
		{ErrSpinNotFound, CodeSpinNotFound},
		{ErrAccountNotFound, CodeAccountNotFound},
		{ErrStorageQuota, CodeStorageQuota},
		{ErrStorage, CodeStorage},
		{errors.New("something else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestErrorCodeUnwrapsContext(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", ErrDuplicateEmail)
	assert.Equal(t, CodeDuplicateEmail, ErrorCode(wrapped))
	assert.True(t, IsValidationError(wrapped))
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(42, "50.0", "12.3")

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "wager 50.0")
	assert.Contains(t, err.Error(), "available 12.3")

	var detailed *InsufficientBalanceError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, uint64(42), detailed.AccountID)
	assert.Equal(t, CodeInsufficientBalance, detailed.LogFields()["error_code"])
}

func TestStorageError(t *testing.T) {
	err := NewStorageError("set", "accounts", ErrStorageQuota)

	assert.True(t, IsStorageQuotaError(err))
	assert.ErrorIs(t, err, ErrStorageQuota)
	assert.Equal(t, CodeStorageQuota, ErrorCode(err))
	assert.Contains(t, err.Error(), `record "accounts"`)

	plain := NewStorageError("get", "current_account", errors.New("disk I/O error"))
	assert.False(t, IsStorageQuotaError(plain))

	var storageErr *StorageError
	assert.True(t, errors.As(plain, &storageErr))
	assert.Equal(t, "get", storageErr.LogFields()["op"])
}
