package invitation

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "invitehub/internal/errors"
	"invitehub/internal/repository"
	"invitehub/pkg/logger"
)

// Store is the durable token-keyed invitation registry. Every mutation is
// written through to Mongo before the in-memory map is touched, so a restart
// followed by Reload observes the same set of invitations.
type Store struct {
	mu    sync.RWMutex
	repo  repository.InvitationRepository
	types *TypeRegistry
	byTok map[string]Invitation
}

// NewStore creates an empty registry. Call Reload to hydrate it from Mongo.
func NewStore(repo repository.InvitationRepository, types *TypeRegistry) *Store {
	return &Store{
		repo:  repo,
		types: types,
		byTok: make(map[string]Invitation),
	}
}

// Reload replaces the in-memory map with the persisted invitations. Records
// whose type is not registered, or that fail to deserialize, are skipped with
// a warning rather than failing the load.
func (s *Store) Reload(ctx context.Context) error {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	loaded := make(map[string]Invitation, len(records))
	for i := range records {
		record := &records[i]
		typ, err := s.types.FindByID(record.Type)
		if err != nil {
			logger.Log.WithFields(map[string]interface{}{
				"token": record.Token,
				"type":  record.Type,
			}).Warn("Skipping invitation with unregistered type")
			continue
		}
		inv, err := typ.Deserialize(record)
		if err != nil {
			logger.Log.WithFields(map[string]interface{}{
				"token": record.Token,
				"type":  record.Type,
				"error": err.Error(),
			}).Warn("Skipping invitation that failed to deserialize")
			continue
		}
		loaded[inv.Token()] = inv
	}

	s.mu.Lock()
	s.byTok = loaded
	s.mu.Unlock()

	logger.Log.WithField("count", len(loaded)).Info("Invitation registry loaded")
	return nil
}

// Add registers a new invitation. The token must be unused; a persisted
// duplicate surfaces as ErrDuplicateToken.
func (s *Store) Add(ctx context.Context, inv Invitation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byTok[inv.Token()]; exists {
		return apperrors.ErrDuplicateToken
	}
	if err := s.repo.Insert(ctx, inv.Record()); err != nil {
		return err
	}
	s.byTok[inv.Token()] = inv
	return nil
}

// Get returns the invitation for the token, or nil when the token is unknown
// or the invitation has expired.
func (s *Store) Get(token string) Invitation {
	s.mu.RLock()
	inv := s.byTok[token]
	s.mu.RUnlock()

	if inv == nil || inv.Record().Expired(time.Now()) {
		return nil
	}
	return inv
}

// Remove deletes the invitation for the token and returns it, or nil when
// the token was not registered.
func (s *Store) Remove(ctx context.Context, token string) (Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, exists := s.byTok[token]
	if !exists {
		return nil, nil
	}
	if _, err := s.repo.DeleteByToken(ctx, token); err != nil {
		return nil, err
	}
	delete(s.byTok, token)
	return inv, nil
}

// ListAll returns every registered invitation, oldest first.
func (s *Store) ListAll() []Invitation {
	s.mu.RLock()
	out := make([]Invitation, 0, len(s.byTok))
	for _, inv := range s.byTok {
		out = append(out, inv)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Record(), out[j].Record()
		if ri.CreatedAt.Equal(rj.CreatedAt) {
			return ri.Token < rj.Token
		}
		return ri.CreatedAt.Before(rj.CreatedAt)
	})
	return out
}

// RemoveExpired deletes every invitation whose expiry has passed, in storage
// and in memory, and returns how many were removed.
func (s *Store) RemoveExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for token, inv := range s.byTok {
		if inv.Record().Expired(now) {
			delete(s.byTok, token)
		}
	}
	return removed, nil
}
