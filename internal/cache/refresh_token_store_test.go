package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"invitehub/internal/cache"
	"invitehub/internal/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRefreshTokenStore_Create(t *testing.T) {
	ctx := context.Background()
	familyID := "test-family-123"
	ttl := 24 * time.Hour
	data := &cache.RefreshTokenData{
		UserID:           "user123",
		CurrentTokenHash: "hash123",
		ExpiresAt:        time.Now().Add(ttl),
		CreatedAt:        time.Now(),
	}

	t.Run("creates refresh token family", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Set(ctx, "refresh_token:test-family-123", data, ttl).
			Return(nil)

		store := cache.NewRefreshTokenStore(mockCache)
		err := store.Create(ctx, familyID, data, ttl)

		require.NoError(t, err)
	})

	t.Run("returns error when cache set fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Set(ctx, gomock.Any(), gomock.Any(), ttl).
			Return(errors.New("cache error"))

		store := cache.NewRefreshTokenStore(mockCache)
		err := store.Create(ctx, familyID, data, ttl)

		assert.Error(t, err)
	})
}

func TestRefreshTokenStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(ctx, "refresh_token:fam1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
				*dest.(*cache.RefreshTokenData) = cache.RefreshTokenData{
					UserID:           "user123",
					CurrentTokenHash: "hash123",
				}
				return true, nil
			})

		store := cache.NewRefreshTokenStore(mockCache)
		data, err := store.Get(ctx, "fam1")

		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "user123", data.UserID)
	})

	t.Run("returns nil for an unknown family", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(ctx, "refresh_token:fam1", gomock.Any()).
			Return(false, nil)

		store := cache.NewRefreshTokenStore(mockCache)
		data, err := store.Get(ctx, "fam1")

		require.NoError(t, err)
		assert.Nil(t, data)
	})
}

func TestRefreshTokenStore_Rotate(t *testing.T) {
	ctx := context.Background()
	ttl := 24 * time.Hour

	t.Run("shifts current hash to previous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(ctx, "refresh_token:fam1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
				*dest.(*cache.RefreshTokenData) = cache.RefreshTokenData{
					UserID:           "user123",
					CurrentTokenHash: "old-hash",
				}
				return true, nil
			})
		mockCache.EXPECT().
			Set(ctx, "refresh_token:fam1", gomock.Any(), ttl).
			DoAndReturn(func(_ context.Context, _ string, value interface{}, _ time.Duration) error {
				data := value.(*cache.RefreshTokenData)
				assert.Equal(t, "new-hash", data.CurrentTokenHash)
				assert.Equal(t, "old-hash", data.PreviousTokenHash)
				return nil
			})

		store := cache.NewRefreshTokenStore(mockCache)
		err := store.Rotate(ctx, "fam1", "new-hash", ttl)

		require.NoError(t, err)
	})

	t.Run("fails for an unknown family", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(ctx, "refresh_token:fam1", gomock.Any()).
			Return(false, nil)

		store := cache.NewRefreshTokenStore(mockCache)
		err := store.Rotate(ctx, "fam1", "new-hash", ttl)

		assert.Error(t, err)
	})
}

func TestRefreshTokenStore_Delete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().
		Delete(ctx, "refresh_token:fam1").
		Return(nil)

	store := cache.NewRefreshTokenStore(mockCache)
	err := store.Delete(ctx, "fam1")

	require.NoError(t, err)
}
