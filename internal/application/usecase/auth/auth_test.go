package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/wallet/internal/application/adapter"
	"github.com/finance-tracker/wallet/internal/domain/entity"
	domainerror "github.com/finance-tracker/wallet/internal/domain/error"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) VerifyPassword(hashedPassword, password string) error {
	return m.Called(hashedPassword, password).Error(0)
}

func (m *mockPasswordService) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.AccessToken, error) {
	args := m.Called(ctx, userID, email)
	token, _ := args.Get(0).(*adapter.AccessToken)
	return token, args.Error(1)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*adapter.TokenClaims)
	return claims, args.Error(1)
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	return authErr.Code
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	token := &adapter.AccessToken{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("creates the user with a normalized email", func(t *testing.T) {
		users := new(mockUserRepository)
		passwords := new(mockPasswordService)
		tokens := new(mockTokenService)

		passwords.On("ValidatePasswordStrength", "Secret123!").Return(nil)
		passwords.On("HashPassword", "Secret123!").Return("hashed", nil)
		users.On("ExistsByEmail", ctx, "ana@example.com").Return(false, nil)
		users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ana@example.com" && u.PasswordHash == "hashed" && u.Name == "Ana"
		})).Return(nil)
		tokens.On("GenerateAccessToken", ctx, mock.Anything, "ana@example.com").Return(token, nil)

		uc := NewRegisterUserUseCase(users, passwords, tokens)
		out, err := uc.Execute(ctx, RegisterUserInput{Email: "  Ana@Example.com ", Name: " Ana ", Password: "Secret123!"})

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", out.User.Email)
		assert.Equal(t, token, out.AccessToken)
		users.AssertExpectations(t)
		passwords.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		users := new(mockUserRepository)
		passwords := new(mockPasswordService)

		passwords.On("ValidatePasswordStrength", "Secret123!").Return(nil)
		users.On("ExistsByEmail", ctx, "ana@example.com").Return(true, nil)

		uc := NewRegisterUserUseCase(users, passwords, new(mockTokenService))
		_, err := uc.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "Secret123!"})

		assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name     string
		input    RegisterUserInput
		weak     bool
		wantCode domainerror.AuthErrorCode
	}{
		{"blank name", RegisterUserInput{Email: "ana@example.com", Name: "  ", Password: "Secret123!"}, false, domainerror.ErrCodeMissingFields},
		{"bad email", RegisterUserInput{Email: "ana.example.com", Name: "Ana", Password: "Secret123!"}, false, domainerror.ErrCodeInvalidEmail},
		{"weak password", RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "short"}, true, domainerror.ErrCodeWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passwords := new(mockPasswordService)
			if tt.weak {
				passwords.On("ValidatePasswordStrength", tt.input.Password).Return(domainerror.ErrWeakPassword)
			}

			uc := NewRegisterUserUseCase(new(mockUserRepository), passwords, new(mockTokenService))
			_, err := uc.Execute(ctx, tt.input)

			assert.Equal(t, tt.wantCode, authCode(t, err))
		})
	}
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("ana@example.com", "Ana", "hashed")

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		users := new(mockUserRepository)
		passwords := new(mockPasswordService)
		tokens := new(mockTokenService)
		token := &adapter.AccessToken{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}

		users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
		passwords.On("VerifyPassword", "hashed", "Secret123!").Return(nil)
		tokens.On("GenerateAccessToken", ctx, user.ID, user.Email).Return(token, nil)

		out, err := NewLoginUserUseCase(users, passwords, tokens).Execute(ctx, LoginUserInput{
			Email:    "ANA@example.com",
			Password: "Secret123!",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID, out.User.ID)
		assert.Equal(t, "signed", out.AccessToken.Token)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		users := new(mockUserRepository)
		passwords := new(mockPasswordService)

		users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, domainerror.ErrUserNotFound)
		users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
		passwords.On("VerifyPassword", "hashed", "nope").Return(domainerror.ErrInvalidCredentials)

		uc := NewLoginUserUseCase(users, passwords, new(mockTokenService))

		_, unknownErr := uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "nope"})
		_, wrongErr := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "nope"})

		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, unknownErr))
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}
