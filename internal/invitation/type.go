package invitation

import (
	"context"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type is one registered invitation variant. The set of types is fixed at
// startup; an Invitation is always owned by exactly one Type and persisted
// records carry the type id as discriminator.
type Type interface {
	// ID is the stable variant discriminator.
	ID() string
	// Description is the human description shown in admin listings.
	Description() string

	// BuildFromRequest parses and validates the variant-specific fields of
	// an admin request into a new invitation carrying the given token.
	// Role and project ids are recorded as given and only resolved at
	// redemption time.
	BuildFromRequest(req *models.CreateInvitationRequest, createdBy primitive.ObjectID, tok string) (Invitation, error)

	// Deserialize rebuilds an invitation from its persisted record. It must
	// succeed for any record produced by Invitation.Record of this type.
	Deserialize(record *models.InvitationRecord) (Invitation, error)

	// AvailableFor is the coarse check used to decide whether to offer this
	// variant to an admin at all. Not a security boundary on its own; the
	// per-invitation check runs on every mutating admin operation.
	AvailableFor(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

// TypeRegistry is the fixed, ordered set of invitation variants.
type TypeRegistry struct {
	types []Type
}

// NewTypeRegistry creates a registry over the given variants, in order.
func NewTypeRegistry(types ...Type) *TypeRegistry {
	return &TypeRegistry{types: types}
}

// List returns the registered variants in registration order.
func (r *TypeRegistry) List() []Type {
	return r.types
}

// FindByID returns the variant with the given id, or ErrUnknownInvitationType.
func (r *TypeRegistry) FindByID(id string) (Type, error) {
	for _, t := range r.types {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, apperrors.ErrUnknownInvitationType
}
