package cache

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination=mocks/mock_refresh_token_store.go -package=mocks invitehub/internal/cache RefreshTokenStore

// RefreshTokenData represents the data stored in Redis for a refresh token family.
type RefreshTokenData struct {
	UserID            string    `json:"user_id"`
	CurrentTokenHash  string    `json:"current_token_hash"`
	PreviousTokenHash string    `json:"previous_token_hash,omitempty"`
	ExpiresAt         time.Time `json:"expires_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// RefreshTokenStore manages refresh token storage in Redis.
type RefreshTokenStore interface {
	// Create stores a new refresh token family.
	Create(ctx context.Context, familyID string, data *RefreshTokenData, ttl time.Duration) error
	// Get retrieves refresh token data by family ID.
	Get(ctx context.Context, familyID string) (*RefreshTokenData, error)
	// Rotate updates the token hashes for rotation.
	Rotate(ctx context.Context, familyID string, newTokenHash string, ttl time.Duration) error
	// Delete removes a refresh token family.
	Delete(ctx context.Context, familyID string) error
}

type refreshTokenStore struct {
	cache Cache
}

// NewRefreshTokenStore creates a new RefreshTokenStore.
func NewRefreshTokenStore(cache Cache) RefreshTokenStore {
	return &refreshTokenStore{cache: cache}
}

func refreshTokenFamilyKey(familyID string) string {
	return fmt.Sprintf("refresh_token:%s", familyID)
}

// Create stores a new refresh token family.
func (s *refreshTokenStore) Create(ctx context.Context, familyID string, data *RefreshTokenData, ttl time.Duration) error {
	return s.cache.Set(ctx, refreshTokenFamilyKey(familyID), data, ttl)
}

// Get retrieves refresh token data by family ID.
func (s *refreshTokenStore) Get(ctx context.Context, familyID string) (*RefreshTokenData, error) {
	var data RefreshTokenData
	found, err := s.cache.Get(ctx, refreshTokenFamilyKey(familyID), &data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &data, nil
}

// Rotate updates the token hashes (current becomes previous, new becomes current).
func (s *refreshTokenStore) Rotate(ctx context.Context, familyID string, newTokenHash string, ttl time.Duration) error {
	data, err := s.Get(ctx, familyID)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("refresh token family not found")
	}

	data.PreviousTokenHash = data.CurrentTokenHash
	data.CurrentTokenHash = newTokenHash

	return s.cache.Set(ctx, refreshTokenFamilyKey(familyID), data, ttl)
}

// Delete removes a refresh token family.
func (s *refreshTokenStore) Delete(ctx context.Context, familyID string) error {
	return s.cache.Delete(ctx, refreshTokenFamilyKey(familyID))
}
