package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerErrorCode_Kind(t *testing.T) {
	tests := []struct {
		code LedgerErrorCode
		want ErrorKind
	}{
		{ErrCodeInvalidMonth, KindValidation},
		{ErrCodeInvalidSavingPercent, KindValidation},
		{ErrCodeNotAuthorizedForUser, KindAuthorization},
		{ErrCodeUserNotFound, KindNotFound},
		{ErrCodeSummaryNotFound, KindNotFound},
		{ErrCodeStoreFailure, KindStore},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Kind())
		})
	}
}

func TestLedgerError_Wrapping(t *testing.T) {
	err := NewLedgerError(ErrCodeRecordNotFound, "transaction not found", ErrRecordNotFound)
	wrapped := fmt.Errorf("delete: %w", err)

	assert.ErrorIs(t, wrapped, ErrRecordNotFound)
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "transaction not found: transaction not found", err.Error())
}

func TestNewStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("failed to add record", cause)

	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindStore, err.Kind())
}

func TestKindOf_ForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "unknown", ErrorKind(0).String())
	assert.Equal(t, "not_found", KindNotFound.String())
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode LedgerErrorCode
	}{
		{name: "user", err: ErrUserNotFound, wantCode: ErrCodeUserNotFound},
		{name: "record", err: fmt.Errorf("lookup: %w", ErrRecordNotFound), wantCode: ErrCodeRecordNotFound},
		{name: "summary", err: ErrSummaryNotFound, wantCode: ErrCodeSummaryNotFound},
		{name: "driver failure", err: errors.New("deadlock detected"), wantCode: ErrCodeStoreFailure},
		{name: "already typed", err: NewLedgerError(ErrCodeInvalidMonth, "bad", ErrInvalidMonth), wantCode: ErrCodeInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStore(tt.err, "operation failed")

			var ledgerErr *LedgerError
			if assert.ErrorAs(t, got, &ledgerErr) {
				assert.Equal(t, tt.wantCode, ledgerErr.Code)
			}
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, FromStore(nil, "noop"))
}
