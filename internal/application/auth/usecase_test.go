package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/auth"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/memory"
	pkgjwt "github.com/soham-0510/vyapar-sathi-final/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testEmail  = "owner@kirana.shop"
	testPass   = "super-secret-pw"
)

func newAuthUC() *auth.UseCase {
	return auth.NewUseCase(memory.NewUserRepository(), memory.NewTokenStore(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		RefreshTTL: time.Hour,
		Issuer:     "vyapar-sathi-test",
	})
}

func register(t *testing.T, uc *auth.UseCase) *dto.UserResponse {
	t.Helper()
	user, err := uc.Register(dto.RegisterRequest{
		Email:        testEmail,
		Password:     testPass,
		BusinessName: "Sharma Kirana",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	uc := newAuthUC()
	register(t, uc)

	_, err := uc.Register(dto.RegisterRequest{Email: testEmail, Password: "another-pw-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_BusinessNameDefaultsToEmail(t *testing.T) {
	uc := newAuthUC()
	user, err := uc.Register(dto.RegisterRequest{Email: "plain@shop.in", Password: testPass})
	require.NoError(t, err)
	assert.Equal(t, "plain@shop.in", user.BusinessName)
}

func TestLogin_IssuesValidTokenPair(t *testing.T) {
	uc := newAuthUC()
	registered := register(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPass})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, email, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, testEmail, email)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUC()
	register(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@shop.in", Password: testPass})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRefresh_RotatesToken(t *testing.T) {
	uc := newAuthUC()
	register(t, uc)
	ctx := context.Background()

	login, err := uc.Login(ctx, dto.LoginRequest{Email: testEmail, Password: testPass})
	require.NoError(t, err)

	refreshed, err := uc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, refreshed)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken, "a fresh refresh token is issued")

	// The consumed token is single-use.
	_, err = uc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// The rotated token still works.
	again, err := uc.Refresh(ctx, refreshed.RefreshToken)
	require.NoError(t, err)
	assert.NotNil(t, again)
}

func TestRefresh_UnknownToken(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_EmptyToken(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
