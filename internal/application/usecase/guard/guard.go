// Package guard holds the ownership and input checks shared by ledger,
// summary and analytics use cases.
package guard

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
	"github.com/finance-tracker/wallet/internal/domain/valueobject"
)

// AuthorizeOwner checks that the authenticated caller is the user named in
// the request and returns the parsed user id. A user id that cannot be parsed
// can never match the caller, so it is reported as an authorization failure.
func AuthorizeOwner(callerID uuid.UUID, userID string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(userID)
	if err != nil || callerID == uuid.Nil || parsed != callerID {
		return uuid.Nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedForUser,
			"unauthorized access",
			domainerror.ErrNotAuthorizedForUser,
		)
	}
	return parsed, nil
}

// ParseMonth validates a YYYY-MM month key.
func ParseMonth(value string) (valueobject.MonthKey, error) {
	month, err := valueobject.ParseMonthKey(value)
	if err != nil {
		return valueobject.MonthKey{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonth,
			"invalid month format, use YYYY-MM (e.g. 2024-11)",
			domainerror.ErrInvalidMonth,
		)
	}
	return month, nil
}

// ParseMonthOrCurrent parses value, falling back to the UTC month of now
// when value is empty.
func ParseMonthOrCurrent(value string, now func() time.Time) (valueobject.MonthKey, error) {
	if value == "" {
		return valueobject.MonthKeyOf(now()), nil
	}
	return ParseMonth(value)
}
