// Package service contains business logic for the application.
package service

import (
	"context"

	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks invitehub/internal/service AuthServicer,InvitationAdminServicer,DirectoryServicer

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// InvitationAdminServicer defines the interface for the admin invitation
// operations. Every mutating call is gated on the acting admin's directory
// permissions for the invitation's target.
type InvitationAdminServicer interface {
	CreateInvitation(ctx context.Context, adminID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.InvitationResponse, error)
	UpdateInvitation(ctx context.Context, adminID primitive.ObjectID, token string, req *models.CreateInvitationRequest) (*models.InvitationResponse, error)
	RemoveInvitation(ctx context.Context, adminID primitive.ObjectID, token string) (*models.InvitationResponse, error)
	GetInvitation(ctx context.Context, adminID primitive.ObjectID, token string) (*models.InvitationResponse, error)
	ListInvitations(ctx context.Context, adminID primitive.ObjectID) (*models.InvitationListResponse, error)
	ListInvitationTypes(ctx context.Context, adminID primitive.ObjectID) (*models.InvitationTypeListResponse, error)
}

// DirectoryServicer defines the read side of the project & role directory
// that the admin UI consumes when composing invitations.
type DirectoryServicer interface {
	ListProjects(ctx context.Context) (*models.ProjectListResponse, error)
	ListRoles(ctx context.Context) (*models.RoleListResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer            = (*AuthService)(nil)
	_ InvitationAdminServicer = (*InvitationAdminService)(nil)
	_ DirectoryServicer       = (*DirectoryService)(nil)
)
