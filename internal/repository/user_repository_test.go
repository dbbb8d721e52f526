package repository

import (
	"context"
	"testing"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates a user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "oleg@example.com", Username: "oleg", Password: "hashed"}
		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		require.NoError(t, repo.Create(ctx, &models.User{Email: "oleg@example.com", Username: "oleg", Password: "hashed"}))

		err := repo.Create(ctx, &models.User{Email: "oleg@example.com", Username: "oleg2", Password: "hashed"})

		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds a user by email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		require.NoError(t, repo.Create(ctx, &models.User{Email: "oleg@example.com", Username: "oleg", Password: "hashed"}))

		found, err := repo.FindByEmail(ctx, "oleg@example.com")

		require.NoError(t, err)
		assert.Equal(t, "oleg", found.Username)
	})

	t.Run("returns not found for an unknown email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		_, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds a user by id", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		user := &models.User{Email: "oleg@example.com", Username: "oleg", Password: "hashed"}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		_, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
