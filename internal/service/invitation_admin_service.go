package service

import (
	"context"
	"fmt"
	"sync"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/invitation"
	"invitehub/internal/models"
	"invitehub/pkg/logger"
	"invitehub/pkg/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationAdminService handles the admin invitation operations. The gate
// for every mutation is the invitation's own availability check against the
// acting admin, evaluated at call time, so permissions revoked since the
// invitation was created are honored.
type InvitationAdminService struct {
	store *invitation.Store
	types *invitation.TypeRegistry

	// mu serializes admin mutations so an edit's remove+recreate cannot
	// interleave with another mutation of the same token.
	mu sync.Mutex
}

// NewInvitationAdminService creates a new InvitationAdminService.
func NewInvitationAdminService(store *invitation.Store, types *invitation.TypeRegistry) *InvitationAdminService {
	return &InvitationAdminService{store: store, types: types}
}

// CreateInvitation builds an invitation of the requested type under a fresh
// token. The admin must on the spot hold the permissions the invitation
// would exercise.
func (s *InvitationAdminService) CreateInvitation(ctx context.Context, adminID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.InvitationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	typ, err := s.types.FindByID(req.Type)
	if err != nil {
		return nil, err
	}

	inv, err := typ.BuildFromRequest(req, adminID, token.New())
	if err != nil {
		return nil, err
	}

	if err := s.requireAvailable(ctx, adminID, inv); err != nil {
		return nil, err
	}

	if err := s.store.Add(ctx, inv); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"token":   inv.Token(),
		"type":    typ.ID(),
		"adminId": adminID.Hex(),
	}).Info("Invitation created")

	return &models.InvitationResponse{
		Invitation: *inv.Record(),
		Message:    fmt.Sprintf("Invitation '%s' created.", inv.Name()),
	}, nil
}

// UpdateInvitation replaces the invitation behind the token with a rebuilt
// one carrying the same token, so links already handed out keep working.
// The admin must be allowed for both the current and the new configuration.
func (s *InvitationAdminService) UpdateInvitation(ctx context.Context, adminID primitive.ObjectID, tok string, req *models.CreateInvitationRequest) (*models.InvitationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.store.Get(tok)
	if existing == nil {
		return nil, apperrors.ErrInvitationNotFound
	}
	if err := s.requireAvailable(ctx, adminID, existing); err != nil {
		return nil, err
	}

	typ, err := s.types.FindByID(req.Type)
	if err != nil {
		return nil, err
	}
	replacement, err := typ.BuildFromRequest(req, adminID, tok)
	if err != nil {
		return nil, err
	}
	if err := s.requireAvailable(ctx, adminID, replacement); err != nil {
		return nil, err
	}

	if _, err := s.store.Remove(ctx, tok); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, replacement); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"token":   tok,
		"type":    typ.ID(),
		"adminId": adminID.Hex(),
	}).Info("Invitation updated")

	return &models.InvitationResponse{
		Invitation: *replacement.Record(),
		Message:    fmt.Sprintf("Invitation '%s' updated.", replacement.Name()),
	}, nil
}

// RemoveInvitation retires the invitation behind the token.
func (s *InvitationAdminService) RemoveInvitation(ctx context.Context, adminID primitive.ObjectID, tok string) (*models.InvitationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.store.Get(tok)
	if existing == nil {
		return nil, apperrors.ErrInvitationNotFound
	}
	if err := s.requireAvailable(ctx, adminID, existing); err != nil {
		return nil, err
	}

	removed, err := s.store.Remove(ctx, tok)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, apperrors.ErrInvitationNotFound
	}

	logger.Log.WithFields(map[string]interface{}{
		"token":   tok,
		"adminId": adminID.Hex(),
	}).Info("Invitation removed")

	return &models.InvitationResponse{
		Invitation: *removed.Record(),
		Message:    fmt.Sprintf("Invitation '%s' removed.", removed.Name()),
	}, nil
}

// GetInvitation returns the invitation behind the token, provided the admin
// is still allowed to manage it.
func (s *InvitationAdminService) GetInvitation(ctx context.Context, adminID primitive.ObjectID, tok string) (*models.InvitationResponse, error) {
	inv := s.store.Get(tok)
	if inv == nil {
		return nil, apperrors.ErrInvitationNotFound
	}
	if err := s.requireAvailable(ctx, adminID, inv); err != nil {
		return nil, err
	}
	return &models.InvitationResponse{Invitation: *inv.Record()}, nil
}

// ListInvitations returns the invitations the admin is allowed to manage.
func (s *InvitationAdminService) ListInvitations(ctx context.Context, adminID primitive.ObjectID) (*models.InvitationListResponse, error) {
	items := make([]models.InvitationRecord, 0)
	for _, inv := range s.store.ListAll() {
		ok, err := inv.AvailableFor(ctx, adminID)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, *inv.Record())
		}
	}
	return &models.InvitationListResponse{Items: items}, nil
}

// ListInvitationTypes returns the variants the admin could create an
// invitation of, per each variant's coarse availability check.
func (s *InvitationAdminService) ListInvitationTypes(ctx context.Context, adminID primitive.ObjectID) (*models.InvitationTypeListResponse, error) {
	items := make([]models.InvitationTypeView, 0)
	for _, typ := range s.types.List() {
		ok, err := typ.AvailableFor(ctx, adminID)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, models.InvitationTypeView{
				ID:          typ.ID(),
				Description: typ.Description(),
			})
		}
	}
	return &models.InvitationTypeListResponse{Items: items}, nil
}

// requireAvailable maps a failed availability check to ErrAccessDenied.
func (s *InvitationAdminService) requireAvailable(ctx context.Context, adminID primitive.ObjectID, inv invitation.Invitation) error {
	ok, err := inv.AvailableFor(ctx, adminID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrAccessDenied
	}
	return nil
}
