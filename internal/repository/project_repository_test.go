package repository

import (
	"context"
	"testing"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_Insert(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProjectRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully inserts a project", func(t *testing.T) {
		tdb.ClearCollection(t, "projects")

		project := &models.Project{ExtID: "OlegProject", ParentExtID: "_Root", Name: "oleg project"}
		err := repo.Insert(ctx, project)

		require.NoError(t, err)
		assert.False(t, project.ID.IsZero())
		assert.NotZero(t, project.CreatedAt)
	})

	t.Run("rejects a duplicate name under the same parent", func(t *testing.T) {
		tdb.ClearCollection(t, "projects")
		tdb.EnsureUniqueIndex(t, "projects", "parentExtId", "name")

		require.NoError(t, repo.Insert(ctx, &models.Project{ExtID: "OlegProject", ParentExtID: "_Root", Name: "oleg project"}))

		err := repo.Insert(ctx, &models.Project{ExtID: "OlegProject2", ParentExtID: "_Root", Name: "oleg project"})

		assert.ErrorIs(t, err, apperrors.ErrDuplicateProjectName)
	})

	t.Run("allows the same name under a different parent", func(t *testing.T) {
		tdb.ClearCollection(t, "projects")
		tdb.EnsureUniqueIndex(t, "projects", "parentExtId", "name")

		require.NoError(t, repo.Insert(ctx, &models.Project{ExtID: "A", ParentExtID: "_Root", Name: "sandbox"}))

		err := repo.Insert(ctx, &models.Project{ExtID: "B", ParentExtID: "TestDrive", Name: "sandbox"})

		assert.NoError(t, err)
	})
}

func TestProjectRepository_FindByExtID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProjectRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds a project by external id", func(t *testing.T) {
		tdb.ClearCollection(t, "projects")
		require.NoError(t, repo.Insert(ctx, &models.Project{ExtID: "TestDrive", ParentExtID: "_Root", Name: "Test drive"}))

		found, err := repo.FindByExtID(ctx, "TestDrive")

		require.NoError(t, err)
		assert.Equal(t, "Test drive", found.Name)
		assert.Equal(t, "_Root", found.ParentExtID)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		tdb.ClearCollection(t, "projects")

		_, err := repo.FindByExtID(ctx, "nope")

		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
	})
}

func TestProjectRepository_FindActive(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProjectRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "projects")
	require.NoError(t, repo.Insert(ctx, &models.Project{ExtID: "Active", Name: "active"}))
	require.NoError(t, repo.Insert(ctx, &models.Project{ExtID: "Shelved", Name: "shelved", Archived: true}))

	active, err := repo.FindActive(ctx)

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active", active[0].ExtID)
}

func TestProjectRepository_ExtIDExists(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewProjectRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "projects")
	require.NoError(t, repo.Insert(ctx, &models.Project{ExtID: "TestDrive", Name: "Test drive"}))

	exists, err := repo.ExtIDExists(ctx, "TestDrive")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExtIDExists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, exists)
}
