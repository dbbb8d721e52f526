package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invitehub/internal/directory"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	"invitehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TypeIDJoinProject is the discriminator of the join-existing-project variant.
const TypeIDJoinProject = "joinProjectInvitation"

// JoinProjectType invites a user to join an existing project with a
// configured role.
type JoinProjectType struct {
	dir directory.Directory
}

// NewJoinProjectType creates the join-existing-project variant.
func NewJoinProjectType(dir directory.Directory) *JoinProjectType {
	return &JoinProjectType{dir: dir}
}

var _ Type = (*JoinProjectType)(nil)

func (t *JoinProjectType) ID() string { return TypeIDJoinProject }

func (t *JoinProjectType) Description() string { return "Invite user to join a project" }

// BuildFromRequest parses the variant fields of an admin request.
func (t *JoinProjectType) BuildFromRequest(req *models.CreateInvitationRequest, createdBy primitive.ObjectID, tok string) (Invitation, error) {
	if req.Project == "" {
		return nil, fmt.Errorf("%w: project is required", apperrors.ErrValidation)
	}
	if req.RoleID == "" {
		return nil, fmt.Errorf("%w: roleId is required", apperrors.ErrValidation)
	}

	record := models.InvitationRecord{
		Token:        tok,
		Type:         t.ID(),
		Name:         req.Name,
		MultiUse:     req.MultiUse,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
		ProjectExtID: req.Project,
		RoleID:       req.RoleID,
	}
	if req.ExpiresIn != "" {
		d, err := time.ParseDuration(req.ExpiresIn)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: expiresIn must be a positive duration", apperrors.ErrValidation)
		}
		record.ExpiresAt = record.CreatedAt.Add(d)
	}

	return &joinProjectInvitation{base: base{record: record}, typ: t}, nil
}

// Deserialize rebuilds an invitation from its persisted record.
func (t *JoinProjectType) Deserialize(record *models.InvitationRecord) (Invitation, error) {
	if record.Type != t.ID() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownInvitationType, record.Type)
	}
	return &joinProjectInvitation{base: base{record: *record}, typ: t}, nil
}

// AvailableFor reports whether any active project can host invitations of
// this variant for the user.
func (t *JoinProjectType) AvailableFor(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	projects, err := t.dir.ListActiveProjects(ctx)
	if err != nil {
		return false, err
	}
	for _, project := range projects {
		ok, err := t.dir.ActorHasPermission(ctx, userID, directory.PermissionChangeUserRoles, project.ExtID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// joinProjectInvitation is one invitation of the join-existing-project variant.
type joinProjectInvitation struct {
	base
	typ *JoinProjectType
}

func (inv *joinProjectInvitation) Type() Type { return inv.typ }

// AvailableFor requires change_user_roles on the configured target project.
func (inv *joinProjectInvitation) AvailableFor(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	return inv.typ.dir.ActorHasPermission(ctx, userID, directory.PermissionChangeUserRoles, inv.record.ProjectExtID)
}

// Redeem grants the configured role on the target project under the system
// identity.
func (inv *joinProjectInvitation) Redeem(ctx context.Context, user *models.User) (*RedemptionResult, error) {
	dir := inv.typ.dir

	project, err := dir.FindProjectByExtID(ctx, inv.record.ProjectExtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return nil, fmt.Errorf("%w: project %s no longer exists", apperrors.ErrRedemption, inv.record.ProjectExtID)
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

	err = dir.RunAsSystem(ctx, func(ctx context.Context) error {
		return dir.GrantRole(ctx, user.ID, role, project.ExtID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProvisioning, err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"token":   inv.Token(),
		"userId":  user.ID.Hex(),
		"project": project.ExtID,
		"roleId":  role.RoleID,
	}).Info("Invitation redeemed: role granted on project")

	return &RedemptionResult{
		RedirectTo: "/projects/" + project.ExtID,
		Project:    project,
		Role:       role,
	}, nil
}
