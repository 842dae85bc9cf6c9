package guard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

func TestAuthorizeOwner(t *testing.T) {
	caller := uuid.New()

	tests := []struct {
		name     string
		callerID uuid.UUID
		userID   string
		wantErr  bool
	}{
		{name: "owner", callerID: caller, userID: caller.String()},
		{name: "other user", callerID: caller, userID: uuid.NewString(), wantErr: true},
		{name: "malformed user id", callerID: caller, userID: "not-a-uuid", wantErr: true},
		{name: "anonymous caller", callerID: uuid.Nil, userID: uuid.Nil.String(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AuthorizeOwner(tt.callerID, tt.userID)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerror.ErrNotAuthorizedForUser)
				kind, _ := domainerror.KindOf(err)
				assert.Equal(t, domainerror.KindAuthorization, kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.callerID, got)
		})
	}
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-11")
	require.NoError(t, err)
	assert.Equal(t, "2024-11", month.String())

	_, err = ParseMonth("11-2024")
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
	kind, _ := domainerror.KindOf(err)
	assert.Equal(t, domainerror.KindValidation, kind)
}

func TestParseMonthOrCurrent(t *testing.T) {
	now := func() time.Time { return time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC) }

	month, err := ParseMonthOrCurrent("", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-02", month.String())

	month, err = ParseMonthOrCurrent("2024-12", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-12", month.String())

	_, err = ParseMonthOrCurrent("2024-1", now)
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
}
