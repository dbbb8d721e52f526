// Package directorytest provides an in-memory Directory implementation for
// tests.
package directorytest

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"invitehub/internal/directory"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type principalKey struct{}

// Fake is an in-memory Directory. It enforces the same system-identity gate
// as the real implementation so tests exercise the elevation boundary too.
type Fake struct {
	mu          sync.Mutex
	projects    []*models.Project
	roles       map[string]*models.Role
	assignments []models.RoleAssignment

	// CreateProjectErr, when set, makes CreateProject fail. Lets tests
	// simulate directory outages during provisioning.
	CreateProjectErr error
}

// NewFake creates an empty fake directory.
func NewFake() *Fake {
	return &Fake{roles: map[string]*models.Role{}}
}

var _ directory.Directory = (*Fake)(nil)

// AddRole registers a role with the given permissions and returns it.
func (f *Fake) AddRole(roleID string, permissions ...string) *models.Role {
	f.mu.Lock()
	defer f.mu.Unlock()

	role := &models.Role{
		ID:          primitive.NewObjectID(),
		RoleID:      roleID,
		Name:        roleID,
		Permissions: permissions,
	}
	f.roles[roleID] = role
	return role
}

// RemoveRole deletes a role, useful for invalid-configuration scenarios.
func (f *Fake) RemoveRole(roleID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.roles, roleID)
}

// AddProject registers a project without the system-identity gate.
func (f *Fake) AddProject(extID, parentExtID, name string) *models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addProjectLocked(extID, parentExtID, name)
}

func (f *Fake) addProjectLocked(extID, parentExtID, name string) *models.Project {
	project := &models.Project{
		ID:          primitive.NewObjectID(),
		ExtID:       extID,
		ParentExtID: parentExtID,
		Name:        name,
	}
	f.projects = append(f.projects, project)
	return project
}

// Assign grants a role to a user directly, bypassing the system gate.
func (f *Fake) Assign(userID primitive.ObjectID, roleID, projectExtID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments = append(f.assignments, models.RoleAssignment{
		UserID:       userID,
		RoleID:       roleID,
		ProjectExtID: projectExtID,
	})
}

// ProjectByName returns the project with the given display name, or nil.
func (f *Fake) ProjectByName(name string) *models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// RolesOf returns the role ids assigned to the user scoped to the project.
func (f *Fake) RolesOf(userID primitive.ObjectID, projectExtID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, a := range f.assignments {
		if a.UserID == userID && a.ProjectExtID == projectExtID {
			out = append(out, a.RoleID)
		}
	}
	return out
}

// FindProjectByExtID returns the project with the given external id.
func (f *Fake) FindProjectByExtID(ctx context.Context, extID string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.ExtID == extID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

// CreateProject creates a project under the given parent.
func (f *Fake) CreateProject(ctx context.Context, parentExtID, name string) (*models.Project, error) {
	if !isSystem(ctx) {
		return nil, apperrors.ErrSystemOnly
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateProjectErr != nil {
		return nil, f.CreateProjectErr
	}

	if parentExtID != "" {
		found := false
		for _, p := range f.projects {
			if p.ExtID == parentExtID {
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.ErrParentNotFound
		}
	}

	for _, p := range f.projects {
		if p.ParentExtID == parentExtID && p.Name == name {
			return nil, apperrors.ErrDuplicateProjectName
		}
	}

	extID := strings.ReplaceAll(name, " ", "-")
	for i := 1; f.extIDExistsLocked(extID); i++ {
		extID = strings.ReplaceAll(name, " ", "-") + strconv.Itoa(i)
	}

	return f.addProjectLocked(extID, parentExtID, name), nil
}

func (f *Fake) extIDExistsLocked(extID string) bool {
	for _, p := range f.projects {
		if p.ExtID == extID {
			return true
		}
	}
	return false
}

// FindRoleByID returns the role with the given role id.
func (f *Fake) FindRoleByID(ctx context.Context, roleID string) (*models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[roleID]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	return role, nil
}

// GrantRole assigns a role to a user scoped to a project.
func (f *Fake) GrantRole(ctx context.Context, userID primitive.ObjectID, role *models.Role, projectExtID string) error {
	if !isSystem(ctx) {
		return apperrors.ErrSystemOnly
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments = append(f.assignments, models.RoleAssignment{
		UserID:       userID,
		RoleID:       role.RoleID,
		ProjectExtID: projectExtID,
	})
	return nil
}

// ListActiveProjects returns all projects.
func (f *Fake) ListActiveProjects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, nil
}

// ListAvailableRoles returns all roles.
func (f *Fake) ListAvailableRoles(ctx context.Context) ([]models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Role, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, *r)
	}
	return out, nil
}

// ActorHasPermission mirrors the real scope resolution: global assignments,
// the project itself, or any ancestor.
func (f *Fake) ActorHasPermission(ctx context.Context, userID primitive.ObjectID, permission, projectExtID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scopes := map[string]bool{}
	current := projectExtID
	for current != "" && !scopes[current] {
		scopes[current] = true
		parent := ""
		for _, p := range f.projects {
			if p.ExtID == current {
				parent = p.ParentExtID
				break
			}
		}
		current = parent
	}

	for _, a := range f.assignments {
		if a.UserID != userID {
			continue
		}
		if a.ProjectExtID != "" && !scopes[a.ProjectExtID] {
			continue
		}
		role, ok := f.roles[a.RoleID]
		if ok && role.HasPermission(permission) {
			return true, nil
		}
	}
	return false, nil
}

// RunAsSystem executes fn with the elevated system identity.
func (f *Fake) RunAsSystem(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, principalKey{}, "system"))
}

func isSystem(ctx context.Context) bool {
	v, _ := ctx.Value(principalKey{}).(string)
	return v == "system"
}
