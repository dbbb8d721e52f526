package service

import (
	"context"
	"time"

	"invitehub/internal/cache"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	"invitehub/internal/repository"
	"invitehub/pkg/auth"
)

// AuthService handles authentication business logic. Refresh tokens are
// family-scoped and rotated on every refresh; a presented previous-generation
// token is treated as reuse and kills the whole family.
type AuthService struct {
	userRepo        repository.UserRepository
	tokenStore      cache.RefreshTokenStore
	jwtManager      auth.TokenManager
	tokenGenerator  auth.RefreshTokenGenerator
	refreshTokenTTL time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo        repository.UserRepository
	TokenStore      cache.RefreshTokenStore
	JWTManager      auth.TokenManager
	TokenGenerator  auth.RefreshTokenGenerator
	RefreshTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:        cfg.UserRepo,
		tokenStore:      cfg.TokenStore,
		jwtManager:      cfg.JWTManager,
		tokenGenerator:  cfg.TokenGenerator,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// Register creates a new user account and returns auth tokens.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user and returns auth tokens.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(ctx, user)
}

// Refresh exchanges a refresh token for a new access token and a rotated
// refresh token.
func (s *AuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	familyID, err := s.tokenGenerator.ExtractFamilyID(req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	stored, err := s.tokenStore.Get(ctx, familyID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if stored == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenStore.Delete(ctx, familyID)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	incomingHash := s.tokenGenerator.Hash(req.RefreshToken)

	if s.tokenGenerator.CompareHashes(incomingHash, stored.CurrentTokenHash) {
		return s.rotate(ctx, familyID, stored)
	}

	// A previous-generation token means the current one leaked or the
	// client replayed; either way the family is burned.
	if stored.PreviousTokenHash != "" && s.tokenGenerator.CompareHashes(incomingHash, stored.PreviousTokenHash) {
		_ = s.tokenStore.Delete(ctx, familyID)
		return nil, apperrors.ErrRefreshTokenReused
	}

	return nil, apperrors.ErrInvalidRefreshToken
}

// rotate issues a fresh token pair within the family.
func (s *AuthService) rotate(ctx context.Context, familyID string, stored *cache.RefreshTokenData) (*models.RefreshResponse, error) {
	newRefreshToken, err := s.tokenGenerator.GenerateWithFamily(familyID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateToken(stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.Rotate(ctx, familyID, s.tokenGenerator.Hash(newRefreshToken), s.refreshTokenTTL); err != nil {
		return nil, err
	}

	return &models.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout invalidates the refresh token's family. Idempotent.
func (s *AuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	familyID, err := s.tokenGenerator.ExtractFamilyID(req.RefreshToken)
	if err != nil {
		return nil
	}
	_ = s.tokenStore.Delete(ctx, familyID)
	return nil
}

// generateAuthResponse creates access and refresh tokens for a user.
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	refreshToken, familyID, err := s.tokenGenerator.Generate()
	if err != nil {
		return nil, err
	}

	data := &cache.RefreshTokenData{
		UserID:           user.ID.Hex(),
		CurrentTokenHash: s.tokenGenerator.Hash(refreshToken),
		ExpiresAt:        time.Now().Add(s.refreshTokenTTL),
		CreatedAt:        time.Now(),
	}
	if err := s.tokenStore.Create(ctx, familyID, data, s.refreshTokenTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}
