package directory

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	"invitehub/internal/repository"
	"invitehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// extIDAttempts bounds the external id uniqueness loop.
const extIDAttempts = 1000

// LocalDirectory implements Directory using the Mongo repositories.
type LocalDirectory struct {
	projectRepo    repository.ProjectRepository
	roleRepo       repository.RoleRepository
	assignmentRepo repository.RoleAssignmentRepository
}

// NewLocalDirectory creates a new LocalDirectory.
func NewLocalDirectory(
	projectRepo repository.ProjectRepository,
	roleRepo repository.RoleRepository,
	assignmentRepo repository.RoleAssignmentRepository,
) *LocalDirectory {
	return &LocalDirectory{
		projectRepo:    projectRepo,
		roleRepo:       roleRepo,
		assignmentRepo: assignmentRepo,
	}
}

var _ Directory = (*LocalDirectory)(nil)

// FindProjectByExtID returns the project with the given external id.
func (d *LocalDirectory) FindProjectByExtID(ctx context.Context, extID string) (*models.Project, error) {
	return d.projectRepo.FindByExtID(ctx, extID)
}

// CreateProject creates a project under the given parent.
func (d *LocalDirectory) CreateProject(ctx context.Context, parentExtID, name string) (*models.Project, error) {
	if !isSystem(ctx) {
		return nil, apperrors.ErrSystemOnly
	}

	if parentExtID != "" {
		if _, err := d.projectRepo.FindByExtID(ctx, parentExtID); err != nil {
			if err == apperrors.ErrProjectNotFound {
				return nil, apperrors.ErrParentNotFound
			}
			return nil, err
		}
	}

	extID, err := d.generateExtID(ctx, name)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		ExtID:       extID,
		ParentExtID: parentExtID,
		Name:        name,
	}
	if err := d.projectRepo.Insert(ctx, project); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"extId":  project.ExtID,
		"parent": parentExtID,
		"name":   name,
	}).Info("Project created")

	return project, nil
}

// FindRoleByID returns the role with the given role id.
func (d *LocalDirectory) FindRoleByID(ctx context.Context, roleID string) (*models.Role, error) {
	return d.roleRepo.FindByRoleID(ctx, roleID)
}

// GrantRole assigns a role to a user scoped to a project.
func (d *LocalDirectory) GrantRole(ctx context.Context, userID primitive.ObjectID, role *models.Role, projectExtID string) error {
	if !isSystem(ctx) {
		return apperrors.ErrSystemOnly
	}

	assignment := &models.RoleAssignment{
		UserID:       userID,
		RoleID:       role.RoleID,
		ProjectExtID: projectExtID,
	}
	if err := d.assignmentRepo.Insert(ctx, assignment); err != nil {
		return err
	}

	logger.Log.WithFields(map[string]interface{}{
		"userId":  userID.Hex(),
		"roleId":  role.RoleID,
		"project": projectExtID,
	}).Info("Role granted")

	return nil
}

// ListActiveProjects returns all non-archived projects.
func (d *LocalDirectory) ListActiveProjects(ctx context.Context) ([]models.Project, error) {
	return d.projectRepo.FindActive(ctx)
}

// ListAvailableRoles returns all roles.
func (d *LocalDirectory) ListAvailableRoles(ctx context.Context) ([]models.Role, error) {
	return d.roleRepo.FindAll(ctx)
}

// ActorHasPermission reports whether the user holds the permission for the
// project. An assignment counts when its role carries the permission and its
// scope is global, the project itself, or an ancestor of the project.
func (d *LocalDirectory) ActorHasPermission(ctx context.Context, userID primitive.ObjectID, permission, projectExtID string) (bool, error) {
	scopes, err := d.ancestorChain(ctx, projectExtID)
	if err != nil {
		return false, err
	}

	assignments, err := d.assignmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, assignment := range assignments {
		if assignment.ProjectExtID != "" && !scopes[assignment.ProjectExtID] {
			continue
		}

		role, err := d.roleRepo.FindByRoleID(ctx, assignment.RoleID)
		if err != nil {
			if err == apperrors.ErrRoleNotFound {
				continue // stale assignment, ignore
			}
			return false, err
		}
		if role.HasPermission(permission) {
			return true, nil
		}
	}

	return false, nil
}

// RunAsSystem executes fn with the elevated system identity.
func (d *LocalDirectory) RunAsSystem(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(withSystemPrincipal(ctx))
}

// ancestorChain returns the set {project, parent, ..., root} of external ids.
func (d *LocalDirectory) ancestorChain(ctx context.Context, projectExtID string) (map[string]bool, error) {
	chain := map[string]bool{}
	current := projectExtID
	for current != "" && !chain[current] {
		chain[current] = true
		project, err := d.projectRepo.FindByExtID(ctx, current)
		if err != nil {
			if err == apperrors.ErrProjectNotFound {
				break // target or an ancestor is gone; keep what we have
			}
			return nil, err
		}
		current = project.ParentExtID
	}
	return chain, nil
}

// generateExtID derives a unique external id from a project name, appending
// a numeric suffix on collision.
func (d *LocalDirectory) generateExtID(ctx context.Context, name string) (string, error) {
	base := slugifyExtID(name)

	candidate := base
	for i := 1; i <= extIDAttempts; i++ {
		exists, err := d.projectRepo.ExtIDExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(i)
	}

	return "", apperrors.ErrProvisioning
}

// slugifyExtID turns a free-form project name into an external id: letters
// and digits only, words capitalized, leading digits prefixed.
func slugifyExtID(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r):
			b.WriteRune(r)
			upperNext = false
		default:
			upperNext = true
		}
	}

	s := b.String()
	if s == "" || unicode.IsDigit(rune(s[0])) {
		s = "Project" + s
	}
	return s
}
