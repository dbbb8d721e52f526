package invitation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"invitehub/internal/directory"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	"invitehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TypeIDCreateProject is the discriminator of the create-new-project variant.
const TypeIDCreateProject = "newProjectInvitation"

// UsernamePlaceholder is substituted with the redeeming user's username in
// project name templates.
const UsernamePlaceholder = "{username}"

// maxNameAttempts bounds the duplicate-name retry loop during provisioning.
const maxNameAttempts = 1000

// CreateProjectType invites a user to get a brand-new project created under
// a configured parent, with a role granted on it.
type CreateProjectType struct {
	dir directory.Directory
}

// NewCreateProjectType creates the create-new-project variant.
func NewCreateProjectType(dir directory.Directory) *CreateProjectType {
	return &CreateProjectType{dir: dir}
}

var _ Type = (*CreateProjectType)(nil)

// ID returns the variant discriminator.
func (t *CreateProjectType) ID() string { return TypeIDCreateProject }

// Description returns the human description of this variant.
func (t *CreateProjectType) Description() string { return "Invite user to create a project" }

// BuildFromRequest parses the variant fields of an admin request.
func (t *CreateProjectType) BuildFromRequest(req *models.CreateInvitationRequest, createdBy primitive.ObjectID, tok string) (Invitation, error) {
	if req.ParentProject == "" {
		return nil, fmt.Errorf("%w: parentProject is required", apperrors.ErrValidation)
	}
	if req.RoleID == "" {
		return nil, fmt.Errorf("%w: roleId is required", apperrors.ErrValidation)
	}
	if req.NewProjectName == "" {
		return nil, fmt.Errorf("%w: newProjectName is required", apperrors.ErrValidation)
	}

	record := models.InvitationRecord{
		Token:          tok,
		Type:           t.ID(),
		Name:           req.Name,
		MultiUse:       req.MultiUse,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
		ParentExtID:    req.ParentProject,
		RoleID:         req.RoleID,
		NewProjectName: req.NewProjectName,
	}
	if req.ExpiresIn != "" {
		d, err := time.ParseDuration(req.ExpiresIn)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: expiresIn must be a positive duration", apperrors.ErrValidation)
		}
		record.ExpiresAt = record.CreatedAt.Add(d)
	}

	return &createProjectInvitation{base: base{record: record}, typ: t}, nil
}

// Deserialize rebuilds an invitation from its persisted record.
func (t *CreateProjectType) Deserialize(record *models.InvitationRecord) (Invitation, error) {
	if record.Type != t.ID() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownInvitationType, record.Type)
	}
	return &createProjectInvitation{base: base{record: *record}, typ: t}, nil
}

// AvailableFor reports whether any active project can host invitations of
// this variant for the user.
func (t *CreateProjectType) AvailableFor(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	projects, err := t.dir.ListActiveProjects(ctx)
	if err != nil {
		return false, err
	}
	for _, project := range projects {
		ok, err := availableOnParent(ctx, t.dir, userID, project.ExtID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// availableOnParent checks the create-new-project permission pair on one
// parent project.
func availableOnParent(ctx context.Context, dir directory.Directory, userID primitive.ObjectID, parentExtID string) (bool, error) {
	canCreate, err := dir.ActorHasPermission(ctx, userID, directory.PermissionCreateSubProject, parentExtID)
	if err != nil || !canCreate {
		return false, err
	}
	return dir.ActorHasPermission(ctx, userID, directory.PermissionChangeUserRoles, parentExtID)
}

// createProjectInvitation is one invitation of the create-new-project variant.
type createProjectInvitation struct {
	base
	typ *CreateProjectType
}

func (inv *createProjectInvitation) Type() Type { return inv.typ }

// AvailableFor requires both create_sub_project and change_user_roles on the
// configured parent, evaluated against the invitation's current target.
func (inv *createProjectInvitation) AvailableFor(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	return availableOnParent(ctx, inv.typ.dir, userID, inv.record.ParentExtID)
}

// Redeem creates a project named from the template (suffixing on name
// collisions) under the configured parent and grants the configured role on
// it, all under the system identity. The redeeming user's own permissions
// are never consulted: the admin who configured the invitation was checked
// at creation time.
func (inv *createProjectInvitation) Redeem(ctx context.Context, user *models.User) (*RedemptionResult, error) {
	dir := inv.typ.dir

	if _, err := dir.FindProjectByExtID(ctx, inv.record.ParentExtID); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return nil, fmt.Errorf("%w: parent project %s no longer exists", apperrors.ErrRedemption, inv.record.ParentExtID)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProvisioning, err)
	}

	role, err := dir.FindRoleByID(ctx, inv.record.RoleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoleNotFound) {
			return nil, fmt.Errorf("%w: role %s no longer exists", apperrors.ErrRedemption, inv.record.RoleID)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProvisioning, err)
	}

	var created *models.Project
	err = dir.RunAsSystem(ctx, func(ctx context.Context) error {
		baseName := strings.ReplaceAll(inv.record.NewProjectName, UsernamePlaceholder, user.Username)
		name := baseName
		for attempt := 1; ; attempt++ {
			project, err := dir.CreateProject(ctx, inv.record.ParentExtID, name)
			if err == nil {
				created = project
				break
			}
			if !errors.Is(err, apperrors.ErrDuplicateProjectName) {
				return fmt.Errorf("%w: %v", apperrors.ErrProvisioning, err)
			}
			if attempt >= maxNameAttempts {
				return fmt.Errorf("%w: gave up finding a free project name after %d attempts", apperrors.ErrProvisioning, attempt)
			}
			name = baseName + strconv.Itoa(attempt)
		}

		return dir.GrantRole(ctx, user.ID, role, created.ExtID)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"token":   inv.Token(),
		"userId":  user.ID.Hex(),
		"project": created.ExtID,
		"roleId":  role.RoleID,
	}).Info("Invitation redeemed: project created and role granted")

	return &RedemptionResult{
		RedirectTo: "/projects/" + created.ExtID + "/edit",
		Project:    created,
		Role:       role,
	}, nil
}
