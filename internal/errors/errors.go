// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenReused  = errors.New("refresh token reuse detected")
	ErrAccessDenied        = errors.New("access denied")
)

// Directory errors
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrParentNotFound       = errors.New("parent project not found")
	ErrDuplicateProjectName = errors.New("project with this name already exists under the parent")
	ErrRoleNotFound         = errors.New("role not found")
	ErrSystemOnly           = errors.New("operation requires the system identity")
)

// Invitation errors
var (
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrDuplicateToken        = errors.New("invitation token already exists")
	ErrUnknownInvitationType = errors.New("unknown invitation type")
	ErrValidation            = errors.New("invalid invitation request")
)

// Redemption errors
var (
	// ErrRedemption marks an invitation whose configuration no longer
	// resolves (missing role or project). Logged as a configuration
	// problem, never shown to the redeeming visitor.
	ErrRedemption = errors.New("invalid invitation configuration")

	// ErrProvisioning marks a transient provisioning failure, including an
	// exhausted project name retry budget.
	ErrProvisioning = errors.New("provisioning failed")
)
