package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/apperror"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

func newAuthFixture(t *testing.T, expiry time.Duration) AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", expiry)
}

func TestRegisterAndVerifyToken(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, "Asha Sharma", "asha@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, strings.HasPrefix(user.ID, "user-"))
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be stored hashed")

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, model.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Asha Sharma", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Asha", "asha@example.com", "different456")
	assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		field    string
	}{
		{"short name", "A", "asha@example.com", "secret123", "fullName"},
		{"bad email", "Asha Sharma", "asha@nowhere", "secret123", "email"},
		{"short password", "Asha Sharma", "asha@example.com", "12345", "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.fullName, tt.email, tt.password)
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, "Asha Sharma", "asha@example.com", "secret123")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials,
		"unknown email must look the same as a wrong password")
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := newAuthFixture(t, -time.Minute)

	token, _, err := svc.Register(context.Background(), "Asha Sharma", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}

func TestVerifyTokenGarbage(t *testing.T) {
	svc := newAuthFixture(t, time.Hour)

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	issuer := NewAuthService(userRepo, "secret-a", time.Hour)
	verifier := NewAuthService(userRepo, "secret-b", time.Hour)

	token, _, err := issuer.Register(context.Background(), "Asha Sharma", "asha@example.com", "secret123")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestEnsureAdmin(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := NewAuthService(userRepo, "test-secret", time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Store Admin", "admin@example.com", "admin123"))

	token, user, err := svc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	// seeding again is a no-op, not an error
	require.NoError(t, svc.EnsureAdmin(ctx, "Store Admin", "admin@example.com", "admin123"))

	// unset config skips seeding
	require.NoError(t, svc.EnsureAdmin(ctx, "Store Admin", "", ""))
}
