package cache

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination=mocks/mock_invite_session_store.go -package=mocks invitehub/internal/cache InviteSessionStore

// InviteSessionBinding is what the redemption flow keeps per visitor between
// following an invitation link and completing registration: the token only,
// never the invitation itself. The invitation is re-resolved from the
// registry once the visitor authenticates, so edits and removals made in
// between are honored.
type InviteSessionBinding struct {
	Token   string    `json:"token"`
	BoundAt time.Time `json:"bound_at"`
}

// InviteSessionStore binds invitation tokens to anonymous invite sessions.
type InviteSessionStore interface {
	// Bind stores the token for an invite session, replacing any previous
	// binding.
	Bind(ctx context.Context, sessionID, token string, ttl time.Duration) error
	// Get returns the binding for an invite session, or nil if none exists.
	Get(ctx context.Context, sessionID string) (*InviteSessionBinding, error)
	// Delete removes the binding for an invite session.
	Delete(ctx context.Context, sessionID string) error
}

type inviteSessionStore struct {
	cache Cache
}

// NewInviteSessionStore creates a new InviteSessionStore.
func NewInviteSessionStore(cache Cache) InviteSessionStore {
	return &inviteSessionStore{cache: cache}
}

func inviteSessionKey(sessionID string) string {
	return fmt.Sprintf("invite_session:%s", sessionID)
}

// Bind stores the token for an invite session.
func (s *inviteSessionStore) Bind(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	binding := &InviteSessionBinding{
		Token:   token,
		BoundAt: time.Now(),
	}
	return s.cache.Set(ctx, inviteSessionKey(sessionID), binding, ttl)
}

// Get returns the binding for an invite session, or nil if none exists.
func (s *inviteSessionStore) Get(ctx context.Context, sessionID string) (*InviteSessionBinding, error) {
	var binding InviteSessionBinding
	found, err := s.cache.Get(ctx, inviteSessionKey(sessionID), &binding)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &binding, nil
}

// Delete removes the binding for an invite session.
func (s *inviteSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, inviteSessionKey(sessionID))
}
