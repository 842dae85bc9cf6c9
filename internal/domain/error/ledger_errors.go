package error

import (
	"errors"
	"strings"
)

// Ledger and summary domain errors.
var (
	// ErrInvalidMonth is returned when a month key is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("invalid month format, use YYYY-MM (e.g. 2024-11)")

	// ErrMissingRecordFields is returned when type, category or amount is absent.
	ErrMissingRecordFields = errors.New("type, category and amount are required")

	// ErrInvalidRecordType is returned when the record type is not income or expenses.
	ErrInvalidRecordType = errors.New("type must be income or expenses")

	// ErrInvalidSavingPercent is returned when a saving percent is outside [1,100].
	ErrInvalidSavingPercent = errors.New("saving must be an integer between 1 and 100")

	// ErrInvalidPageSize is returned when a list limit is not a positive integer.
	ErrInvalidPageSize = errors.New("limit must be a positive integer")

	// ErrInvalidUserID is returned when a user id path parameter is malformed.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrNotAuthorizedForUser is returned when the caller does not own the resource.
	ErrNotAuthorizedForUser = errors.New("not authorized to access this user")

	// ErrRecordNotFound is returned when a record is absent from the month.
	ErrRecordNotFound = errors.New("transaction not found")

	// ErrSummaryNotFound is returned when the month has no summary yet.
	ErrSummaryNotFound = errors.New("monthly summary not found")

	// ErrStoreFailure is returned when the persistence layer fails.
	ErrStoreFailure = errors.New("store operation failed")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is the kind and YYYY is the specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth         LedgerErrorCode = "LDG-010001"
	ErrCodeMissingRecordFields  LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidRecordType    LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidSavingPercent LedgerErrorCode = "LDG-010004"
	ErrCodeInvalidPageSize      LedgerErrorCode = "LDG-010005"
	ErrCodeInvalidRequestBody   LedgerErrorCode = "LDG-010006"

	// Authorization errors (02XXXX)
	ErrCodeNotAuthorizedForUser LedgerErrorCode = "LDG-020001"

	// Not found errors (03XXXX)
	ErrCodeUserNotFound    LedgerErrorCode = "LDG-030001"
	ErrCodeRecordNotFound  LedgerErrorCode = "LDG-030002"
	ErrCodeSummaryNotFound LedgerErrorCode = "LDG-030003"

	// Store errors (04XXXX)
	ErrCodeStoreFailure LedgerErrorCode = "LDG-040001"
)

// ErrorKind classifies a LedgerError for the transport boundary.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthorization
	KindNotFound
	KindStore
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Kind derives the error kind from the code's category digits.
func (c LedgerErrorCode) Kind() ErrorKind {
	switch {
	case strings.HasPrefix(string(c), "LDG-01"):
		return KindValidation
	case strings.HasPrefix(string(c), "LDG-02"):
		return KindAuthorization
	case strings.HasPrefix(string(c), "LDG-03"):
		return KindNotFound
	default:
		return KindStore
	}
}

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *LedgerError) Kind() ErrorKind {
	return e.Code.Kind()
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewStoreError wraps a persistence failure.
func NewStoreError(message string, err error) *LedgerError {
	return NewLedgerError(ErrCodeStoreFailure, message, errors.Join(ErrStoreFailure, err))
}

// KindOf returns the kind of err when it is a LedgerError.
func KindOf(err error) (ErrorKind, bool) {
	var ledgerErr *LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind(), true
	}
	return 0, false
}

// FromStore converts a repository error into a LedgerError. Not-found
// sentinels keep their kind and anything else becomes a store failure.
func FromStore(err error, message string) error {
	var ledgerErr *LedgerError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ledgerErr):
		return err
	case errors.Is(err, ErrUserNotFound):
		return NewLedgerError(ErrCodeUserNotFound, "user not found", err)
	case errors.Is(err, ErrRecordNotFound):
		return NewLedgerError(ErrCodeRecordNotFound, "transaction not found", err)
	case errors.Is(err, ErrSummaryNotFound):
		return NewLedgerError(ErrCodeSummaryNotFound, "monthly summary not found", err)
	default:
		return NewStoreError(message, err)
	}
}
