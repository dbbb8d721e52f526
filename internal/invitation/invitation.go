// Package invitation implements the invitation lifecycle: the fixed set of
// invitation variants, the durable token-keyed registry and the two-phase
// redemption protocol.
package invitation

import (
	"context"

	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RedemptionResult is the outcome of a successful redemption.
type RedemptionResult struct {
	// RedirectTo is where the freshly provisioned user should land.
	RedirectTo string
	// Project is the project the role was granted on (created or existing).
	Project *models.Project
	// Role is the granted role.
	Role *models.Role
}

// Invitation is one redeemable invitation. Implementations are owned by
// exactly one Type and carry that variant's extra fields.
type Invitation interface {
	Token() string
	Name() string
	MultiUse() bool
	Type() Type
	CreatedBy() primitive.ObjectID

	// Record returns the persisted form of the invitation. Deserializing it
	// through the owning type reproduces all observable fields.
	Record() *models.InvitationRecord

	// AvailableFor is the fine-grained admin check: whether the user holds
	// the permissions this invitation would exercise, evaluated against the
	// invitation's current target. Token secrecy plays no part here; this
	// gates admin create/edit/remove, never redemption.
	AvailableFor(ctx context.Context, userID primitive.ObjectID) (bool, error)

	// Redeem performs the variant's provisioning action for a newly
	// authenticated user under the directory's system identity.
	Redeem(ctx context.Context, user *models.User) (*RedemptionResult, error)
}

// base carries the fields shared by every variant.
type base struct {
	record models.InvitationRecord
}

func (b *base) Token() string                  { return b.record.Token }
func (b *base) Name() string                   { return b.record.Name }
func (b *base) MultiUse() bool                 { return b.record.MultiUse }
func (b *base) CreatedBy() primitive.ObjectID  { return b.record.CreatedBy }

// Record returns a copy of the persisted form.
func (b *base) Record() *models.InvitationRecord {
	record := b.record
	return &record
}
