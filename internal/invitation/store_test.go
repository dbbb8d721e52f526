package invitation

import (
	"context"
	"testing"
	"time"

	"invitehub/internal/directory/directorytest"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	repomocks "invitehub/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestRegistry() *TypeRegistry {
	dir := directorytest.NewFake()
	return NewTypeRegistry(NewCreateProjectType(dir), NewJoinProjectType(dir))
}

func buildTestInvitation(t *testing.T, types *TypeRegistry, tok string) Invitation {
	t.Helper()
	typ, err := types.FindByID(TypeIDJoinProject)
	require.NoError(t, err)
	inv, err := typ.BuildFromRequest(newJoinRequest(), primitive.NewObjectID(), tok)
	require.NoError(t, err)
	return inv
}

func TestStore_Add(t *testing.T) {
	t.Run("persists before registering in memory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)
		inv := buildTestInvitation(t, types, "tok1")

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, store.Add(context.Background(), inv))
		assert.NotNil(t, store.Get("tok1"))
	})

	t.Run("rejects a token already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, store.Add(context.Background(), buildTestInvitation(t, types, "tok1")))

		err := store.Add(context.Background(), buildTestInvitation(t, types, "tok1"))
		assert.ErrorIs(t, err, apperrors.ErrDuplicateToken)
	})

	t.Run("does not register when persistence fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := store.Add(context.Background(), buildTestInvitation(t, types, "tok1"))
		assert.Error(t, err)
		assert.Nil(t, store.Get("tok1"))
	})
}

func TestStore_Get(t *testing.T) {
	t.Run("returns nil for unknown token", func(t *testing.T) {
		store := NewStore(nil, newTestRegistry())
		assert.Nil(t, store.Get("nope"))
	})

	t.Run("returns nil for expired invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)

		typ, err := types.FindByID(TypeIDJoinProject)
		require.NoError(t, err)
		record := &models.InvitationRecord{
			Token:        "tok1",
			Type:         TypeIDJoinProject,
			Name:         "stale",
			ProjectExtID: "TestDrive",
			RoleID:       "PROJECT_DEVELOPER",
			CreatedAt:    time.Now().Add(-2 * time.Hour),
			ExpiresAt:    time.Now().Add(-time.Hour),
		}
		inv, err := typ.Deserialize(record)
		require.NoError(t, err)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, store.Add(context.Background(), inv))

		assert.Nil(t, store.Get("tok1"))
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes and returns the invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, store.Add(context.Background(), buildTestInvitation(t, types, "tok1")))

		repo.EXPECT().DeleteByToken(gomock.Any(), "tok1").Return(&models.InvitationRecord{Token: "tok1"}, nil)

		removed, err := store.Remove(context.Background(), "tok1")
		require.NoError(t, err)
		require.NotNil(t, removed)
		assert.Equal(t, "tok1", removed.Token())
		assert.Nil(t, store.Get("tok1"))
	})

	t.Run("returns nil for unknown token without touching storage", func(t *testing.T) {
		store := NewStore(nil, newTestRegistry())
		removed, err := store.Remove(context.Background(), "nope")
		require.NoError(t, err)
		assert.Nil(t, removed)
	})
}

func TestStore_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockInvitationRepository(ctrl)
	types := newTestRegistry()
	store := NewStore(repo, types)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	typ, err := types.FindByID(TypeIDJoinProject)
	require.NoError(t, err)
	base := time.Now()
	for i, tok := range []string{"c", "a", "b"} {
		inv, err := typ.Deserialize(&models.InvitationRecord{
			Token:        tok,
			Type:         TypeIDJoinProject,
			Name:         tok,
			ProjectExtID: "TestDrive",
			RoleID:       "PROJECT_DEVELOPER",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		require.NoError(t, store.Add(context.Background(), inv))
	}

	all := store.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Token())
	assert.Equal(t, "a", all[1].Token())
	assert.Equal(t, "b", all[2].Token())
}

func TestStore_Reload(t *testing.T) {
	t.Run("hydrates registered invitations and skips unknown types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)

		repo.EXPECT().FindAll(gomock.Any()).Return([]models.InvitationRecord{
			{Token: "good", Type: TypeIDJoinProject, Name: "ok", ProjectExtID: "TestDrive", RoleID: "PROJECT_DEVELOPER", CreatedAt: time.Now()},
			{Token: "stale", Type: "retiredInvitationType", Name: "old", CreatedAt: time.Now()},
		}, nil)

		require.NoError(t, store.Reload(context.Background()))

		assert.NotNil(t, store.Get("good"))
		assert.Nil(t, store.Get("stale"))
	})

	t.Run("replaces previous in-memory state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockInvitationRepository(ctrl)
		types := newTestRegistry()
		store := NewStore(repo, types)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, store.Add(context.Background(), buildTestInvitation(t, types, "tok1")))

		repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		require.NoError(t, store.Reload(context.Background()))

		assert.Nil(t, store.Get("tok1"))
	})
}

func TestStore_RemoveExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockInvitationRepository(ctrl)
	types := newTestRegistry()
	store := NewStore(repo, types)

	typ, err := types.FindByID(TypeIDJoinProject)
	require.NoError(t, err)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	expired, err := typ.Deserialize(&models.InvitationRecord{
		Token: "expired", Type: TypeIDJoinProject, ProjectExtID: "TestDrive", RoleID: "PROJECT_DEVELOPER",
		CreatedAt: time.Now().Add(-2 * time.Hour), ExpiresAt: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), expired))
	require.NoError(t, store.Add(context.Background(), buildTestInvitation(t, types, "alive")))

	repo.EXPECT().DeleteExpired(gomock.Any()).Return(1, nil)

	removed, err := store.RemoveExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NotNil(t, store.Get("alive"))

	all := store.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, "alive", all[0].Token())
}
