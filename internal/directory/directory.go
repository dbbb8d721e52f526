// Package directory is the project & role directory: hierarchical projects,
// roles with permission sets, and project-scoped role assignments. The
// invitation core consumes it through the Directory interface and never
// touches storage directly.
package directory

import (
	"context"

	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission constants. A role carries a set of these; an assignment scopes
// them to a project subtree or globally.
const (
	PermissionCreateSubProject = "create_sub_project"
	PermissionChangeUserRoles  = "change_user_roles"
	PermissionViewProject      = "view_project"
	PermissionRunBuild         = "run_build"
)

//go:generate mockgen -destination=mocks/mock_directory.go -package=mocks invitehub/internal/directory Directory

// Directory resolves projects and roles, answers permission questions and
// performs privileged provisioning. CreateProject and GrantRole require the
// elevated system identity established by RunAsSystem; everything else runs
// under the caller's ambient identity.
type Directory interface {
	// FindProjectByExtID returns the project with the given external id, or
	// ErrProjectNotFound.
	FindProjectByExtID(ctx context.Context, extID string) (*models.Project, error)

	// CreateProject creates a project under the given parent. Returns
	// ErrSystemOnly outside RunAsSystem, ErrParentNotFound if the parent is
	// missing and ErrDuplicateProjectName when a sibling already has the name.
	CreateProject(ctx context.Context, parentExtID, name string) (*models.Project, error)

	// FindRoleByID returns the role with the given role id, or ErrRoleNotFound.
	FindRoleByID(ctx context.Context, roleID string) (*models.Role, error)

	// GrantRole assigns a role to a user scoped to a project. Returns
	// ErrSystemOnly outside RunAsSystem.
	GrantRole(ctx context.Context, userID primitive.ObjectID, role *models.Role, projectExtID string) error

	// ListActiveProjects returns all non-archived projects.
	ListActiveProjects(ctx context.Context) ([]models.Project, error)

	// ListAvailableRoles returns all roles.
	ListAvailableRoles(ctx context.Context) ([]models.Role, error)

	// ActorHasPermission reports whether the user holds the permission for
	// the project, through an assignment scoped globally, to the project
	// itself, or to one of its ancestors.
	ActorHasPermission(ctx context.Context, userID primitive.ObjectID, permission, projectExtID string) (bool, error)

	// RunAsSystem executes fn with the elevated system identity. The error
	// returned by fn is propagated unchanged. This is the only way to reach
	// CreateProject and GrantRole, which keeps every privilege escalation at
	// a single, auditable call site.
	RunAsSystem(ctx context.Context, fn func(ctx context.Context) error) error
}

type principalKey struct{}

// withSystemPrincipal marks the context as running under the system identity.
func withSystemPrincipal(ctx context.Context) context.Context {
	return context.WithValue(ctx, principalKey{}, "system")
}

// isSystem reports whether the context carries the system identity.
func isSystem(ctx context.Context) bool {
	v, _ := ctx.Value(principalKey{}).(string)
	return v == "system"
}
