package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := &passwordService{cost: bcrypt.MinCost}

	hash, err := svc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, svc.VerifyPassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, svc.VerifyPassword(hash, "other-pass"), domainerror.ErrInvalidCredentials)
}

func TestPasswordService_DefaultCost(t *testing.T) {
	svc := NewPasswordService().(*passwordService)
	assert.Equal(t, 12, svc.cost)
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	svc := NewPasswordService()

	assert.NoError(t, svc.ValidatePasswordStrength("12345678"))
	assert.ErrorIs(t, svc.ValidatePasswordStrength("1234567"), domainerror.ErrWeakPassword)
	assert.ErrorIs(t, svc.ValidatePasswordStrength(""), domainerror.ErrWeakPassword)
}
