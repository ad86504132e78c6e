// Package auth implements registration, login and refresh-token rotation.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
	"github.com/soham-0510/vyapar-sathi-final/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	RefreshTTL time.Duration
	Issuer     string
}

// TokenStore is the outbound port for refresh tokens. Tokens are opaque and
// single-use: Refresh deletes the presented token before issuing a new one.
type TokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns the user id the token belongs to, or "" if unknown/expired.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// UseCase authentication use cases: register, login, refresh.
type UseCase struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	jwtCfg   JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, tokens TokenStore, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, tokens: tokens, jwtCfg: jwtCfg}
}

// Register creates an owner account: hashes the password with bcrypt and persists.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.BusinessName
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		BusinessName: name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password and returns an access token, a refresh token and the user.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is consumed and a fresh
// access/refresh pair is issued. Unknown or expired tokens fail with ErrUnauthorized.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	if refreshToken == "" {
		return nil, domain.ErrUnauthorized
	}
	userID, err := uc.tokens.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.issueTokens(ctx, user)
}

func (uc *UseCase) issueTokens(ctx context.Context, user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh := uuid.New().String()
	if err := uc.tokens.Save(ctx, refresh, user.ID, uc.jwtCfg.RefreshTTL); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		BusinessName: u.BusinessName,
		CreatedAt:    u.CreatedAt,
	}
}
