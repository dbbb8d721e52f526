package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationRecord is the persisted form of an invitation. One record per
// token; the Type field is the variant discriminator used to dispatch
// deserialization. Variant-specific fields are optional and default to zero
// when absent so that records written by older versions keep loading.
type InvitationRecord struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Token    string             `json:"token" bson:"token" example:"0e7c1f3a54d84fc2a6c1"`
	Type     string             `json:"type" bson:"type" example:"newProjectInvitation"`
	Name     string             `json:"name" bson:"name" example:"New teammate invitation"`
	MultiUse bool               `json:"multiUse" bson:"multiUse"`

	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy" example:"507f1f77bcf86cd799439011"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	// ExpiresAt is optional; the zero value means the invitation never
	// expires.
	ExpiresAt time.Time `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`

	// newProjectInvitation fields.
	ParentExtID    string `json:"parentExtId,omitempty" bson:"parentExtId,omitempty" example:"_Root"`
	NewProjectName string `json:"newProjectName,omitempty" bson:"newProjectName,omitempty" example:"{username} project"`

	// joinProjectInvitation fields.
	ProjectExtID string `json:"projectExtId,omitempty" bson:"projectExtId,omitempty" example:"TestDrive"`

	// Shared by both variants.
	RoleID string `json:"roleId,omitempty" bson:"roleId,omitempty" example:"PROJECT_ADMIN"`
}

// Expired reports whether the record carries an expiry in the past.
func (r *InvitationRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && r.ExpiresAt.Before(now)
}

// CreateInvitationRequest is the admin payload for creating (or editing) an
// invitation. Only the shape is validated here; variant fields are checked
// by the invitation type and role/project ids are resolved at redemption.
type CreateInvitationRequest struct {
	Type     string `json:"type" binding:"required" example:"newProjectInvitation"`
	Name     string `json:"name" binding:"required,min=1,max=200" example:"New teammate invitation"`
	MultiUse bool   `json:"multiUse" example:"true"`
	// ExpiresIn is an optional Go duration string ("168h"); empty means the
	// invitation never expires.
	ExpiresIn string `json:"expiresIn" binding:"omitempty" example:"168h"`

	RoleID         string `json:"roleId" binding:"omitempty" example:"PROJECT_ADMIN"`
	ParentProject  string `json:"parentProject" binding:"omitempty" example:"_Root"`
	NewProjectName string `json:"newProjectName" binding:"omitempty,nametemplate" example:"{username} project"`
	Project        string `json:"project" binding:"omitempty" example:"TestDrive"`
}

// InvitationResponse is the admin response for a single invitation, with the
// operator-facing audit message.
type InvitationResponse struct {
	Invitation InvitationRecord `json:"invitation"`
	Message    string           `json:"message" example:"Invitation 'New teammate invitation' created."`
}

// InvitationListResponse is the response for listing invitations.
type InvitationListResponse struct {
	Items []InvitationRecord `json:"items"`
}

// InvitationTypeView describes one registered invitation variant.
type InvitationTypeView struct {
	ID          string `json:"id" example:"newProjectInvitation"`
	Description string `json:"description" example:"Invite user to create a project"`
}

// InvitationTypeListResponse is the response for listing invitation types.
type InvitationTypeListResponse struct {
	Items []InvitationTypeView `json:"items"`
}
