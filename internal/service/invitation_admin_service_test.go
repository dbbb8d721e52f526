package service

import (
	"context"
	"testing"

	"invitehub/internal/directory"
	"invitehub/internal/directory/directorytest"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/invitation"
	"invitehub/internal/models"
	repomocks "invitehub/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type adminServiceFixture struct {
	dir     *directorytest.Fake
	store   *invitation.Store
	service *InvitationAdminService
	admin   primitive.ObjectID
	nobody  primitive.ObjectID
}

// newAdminServiceFixture populates a directory where admin holds every
// permission globally and nobody holds none.
func newAdminServiceFixture(t *testing.T) *adminServiceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repomocks.NewMockInvitationRepository(ctrl)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteByToken(gomock.Any(), gomock.Any()).Return(&models.InvitationRecord{}, nil).AnyTimes()

	dir := directorytest.NewFake()
	dir.AddProject(models.RootProjectExtID, "", "Root project")
	dir.AddProject("TestDrive", models.RootProjectExtID, "Test drive")
	dir.AddRole("PROJECT_ADMIN",
		directory.PermissionCreateSubProject,
		directory.PermissionChangeUserRoles,
	)
	dir.AddRole("PROJECT_DEVELOPER", directory.PermissionViewProject)

	admin := primitive.NewObjectID()
	dir.Assign(admin, "PROJECT_ADMIN", "")

	types := invitation.NewTypeRegistry(
		invitation.NewCreateProjectType(dir),
		invitation.NewJoinProjectType(dir),
	)
	store := invitation.NewStore(repo, types)

	return &adminServiceFixture{
		dir:     dir,
		store:   store,
		service: NewInvitationAdminService(store, types),
		admin:   admin,
		nobody:  primitive.NewObjectID(),
	}
}

func newJoinProjectRequest() *models.CreateInvitationRequest {
	return &models.CreateInvitationRequest{
		Type:     invitation.TypeIDJoinProject,
		Name:     "Join the test drive",
		MultiUse: true,
		RoleID:   "PROJECT_DEVELOPER",
		Project:  "TestDrive",
	}
}

func newCreateProjectRequest() *models.CreateInvitationRequest {
	return &models.CreateInvitationRequest{
		Type:           invitation.TypeIDCreateProject,
		Name:           "New teammate invitation",
		RoleID:         "PROJECT_ADMIN",
		ParentProject:  models.RootProjectExtID,
		NewProjectName: "{username} project",
	}
}

func TestInvitationAdminService_CreateInvitation(t *testing.T) {
	t.Run("creates and registers the invitation", func(t *testing.T) {
		f := newAdminServiceFixture(t)

		resp, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Invitation.Token)
		assert.Equal(t, "Invitation 'Join the test drive' created.", resp.Message)
		assert.NotNil(t, f.store.Get(resp.Invitation.Token))
	})

	t.Run("denies an admin the invitation is not available for", func(t *testing.T) {
		f := newAdminServiceFixture(t)

		_, err := f.service.CreateInvitation(context.Background(), f.nobody, newJoinProjectRequest())

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	})

	t.Run("rejects an unregistered type", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		req := newJoinProjectRequest()
		req.Type = "retiredInvitationType"

		_, err := f.service.CreateInvitation(context.Background(), f.admin, req)

		assert.ErrorIs(t, err, apperrors.ErrUnknownInvitationType)
	})
}

func TestInvitationAdminService_UpdateInvitation(t *testing.T) {
	t.Run("rebuilds the invitation under the same token", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)
		tok := created.Invitation.Token

		req := newJoinProjectRequest()
		req.Name = "Join the test drive, take two"
		resp, err := f.service.UpdateInvitation(context.Background(), f.admin, tok, req)

		require.NoError(t, err)
		assert.Equal(t, tok, resp.Invitation.Token)
		assert.Equal(t, "Invitation 'Join the test drive, take two' updated.", resp.Message)
		assert.Equal(t, "Join the test drive, take two", f.store.Get(tok).Name())
	})

	t.Run("can switch the invitation to another type", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)
		tok := created.Invitation.Token

		resp, err := f.service.UpdateInvitation(context.Background(), f.admin, tok, newCreateProjectRequest())

		require.NoError(t, err)
		assert.Equal(t, tok, resp.Invitation.Token)
		assert.Equal(t, invitation.TypeIDCreateProject, f.store.Get(tok).Type().ID())
	})

	t.Run("denies when the admin lost the permissions meanwhile", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)

		_, err = f.service.UpdateInvitation(context.Background(), f.nobody, created.Invitation.Token, newJoinProjectRequest())

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	})

	t.Run("fails for an unknown token", func(t *testing.T) {
		f := newAdminServiceFixture(t)

		_, err := f.service.UpdateInvitation(context.Background(), f.admin, "nope", newJoinProjectRequest())

		assert.ErrorIs(t, err, apperrors.ErrInvitationNotFound)
	})
}

func TestInvitationAdminService_RemoveInvitation(t *testing.T) {
	t.Run("retires the invitation", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)
		tok := created.Invitation.Token

		resp, err := f.service.RemoveInvitation(context.Background(), f.admin, tok)

		require.NoError(t, err)
		assert.Equal(t, "Invitation 'Join the test drive' removed.", resp.Message)
		assert.Nil(t, f.store.Get(tok))
	})

	t.Run("denies an admin the invitation is not available for", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)

		_, err = f.service.RemoveInvitation(context.Background(), f.nobody, created.Invitation.Token)

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
		assert.NotNil(t, f.store.Get(created.Invitation.Token))
	})

	t.Run("fails for an unknown token", func(t *testing.T) {
		f := newAdminServiceFixture(t)

		_, err := f.service.RemoveInvitation(context.Background(), f.admin, "nope")

		assert.ErrorIs(t, err, apperrors.ErrInvitationNotFound)
	})
}

func TestInvitationAdminService_GetInvitation(t *testing.T) {
	t.Run("returns the invitation to an allowed admin", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)

		resp, err := f.service.GetInvitation(context.Background(), f.admin, created.Invitation.Token)

		require.NoError(t, err)
		assert.Equal(t, created.Invitation.Token, resp.Invitation.Token)
		assert.Equal(t, "Join the test drive", resp.Invitation.Name)
	})

	t.Run("denies an admin the invitation is not available for", func(t *testing.T) {
		f := newAdminServiceFixture(t)
		created, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
		require.NoError(t, err)

		_, err = f.service.GetInvitation(context.Background(), f.nobody, created.Invitation.Token)

		assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
	})

	t.Run("fails for an unknown token", func(t *testing.T) {
		f := newAdminServiceFixture(t)

		_, err := f.service.GetInvitation(context.Background(), f.admin, "nope")

		assert.ErrorIs(t, err, apperrors.ErrInvitationNotFound)
	})
}

func TestInvitationAdminService_ListInvitations(t *testing.T) {
	f := newAdminServiceFixture(t)
	_, err := f.service.CreateInvitation(context.Background(), f.admin, newJoinProjectRequest())
	require.NoError(t, err)

	t.Run("shows available invitations to the admin", func(t *testing.T) {
		resp, err := f.service.ListInvitations(context.Background(), f.admin)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("hides invitations the caller cannot manage", func(t *testing.T) {
		resp, err := f.service.ListInvitations(context.Background(), f.nobody)
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})
}

func TestInvitationAdminService_ListInvitationTypes(t *testing.T) {
	f := newAdminServiceFixture(t)

	t.Run("offers both variants to the admin", func(t *testing.T) {
		resp, err := f.service.ListInvitationTypes(context.Background(), f.admin)
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
	})

	t.Run("offers nothing to a user without permissions", func(t *testing.T) {
		resp, err := f.service.ListInvitationTypes(context.Background(), f.nobody)
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})
}
