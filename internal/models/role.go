package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role represents a named set of permissions that can be granted to a user,
// scoped either globally or to a project subtree.
type Role struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	RoleID      string             `json:"roleId" bson:"roleId" example:"PROJECT_ADMIN"`
	Name        string             `json:"name" bson:"name" example:"Project administrator"`
	Permissions []string           `json:"permissions" bson:"permissions" example:"create_sub_project,change_user_roles"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// HasPermission reports whether the role carries the given permission.
func (r *Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// RoleAssignment binds a role to a user. An empty ProjectExtID means the
// assignment is global; otherwise it covers the project and its descendants.
type RoleAssignment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439012"`
	RoleID       string             `json:"roleId" bson:"roleId" example:"PROJECT_ADMIN"`
	ProjectExtID string             `json:"projectExtId,omitempty" bson:"projectExtId,omitempty" example:"OlegProject"`
	GrantedAt    time.Time          `json:"grantedAt" bson:"grantedAt" example:"2024-01-15T09:30:00Z"`
}

// RoleListResponse is the response for listing available roles.
type RoleListResponse struct {
	Items []Role `json:"items"`
}
