package invitation

import (
	"context"
	"errors"
	"sync"
	"time"

	"invitehub/internal/cache"
	apperrors "invitehub/internal/errors"
	"invitehub/internal/models"
	"invitehub/pkg/logger"
)

// NeutralRedirect is where redemption failures land. It deliberately carries
// no detail about why the token did not work.
const NeutralRedirect = "/"

// LoginRedirect is where a successfully bound visitor is sent to
// authenticate.
const LoginRedirect = "/login"

// Coordinator runs the two-phase redemption protocol: phase one binds a
// token to an anonymous session, phase two redeems it once the session has
// authenticated. Only the token is bound, never the invitation itself, so an
// invitation edited or removed between the phases is honored in its latest
// form or not at all.
type Coordinator struct {
	store      *Store
	sessions   cache.InviteSessionStore
	sessionTTL time.Duration

	// inFlight serializes redemptions per token so a single-use invitation
	// admits exactly one of several concurrent redeemers.
	inFlight sync.Map
}

// NewCoordinator wires the redemption protocol over the registry and the
// session binding store.
func NewCoordinator(store *Store, sessions cache.InviteSessionStore, sessionTTL time.Duration) *Coordinator {
	return &Coordinator{
		store:      store,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// BindTokenToSession is phase one. It binds the token to the session and
// returns where the visitor should be sent next. Unknown and expired tokens
// get the neutral redirect without leaking their nature.
func (c *Coordinator) BindTokenToSession(ctx context.Context, sessionID, token string) string {
	inv := c.store.Get(token)
	if inv == nil {
		logger.Log.WithField("token", token).Info("Invitation landing rejected: unknown or expired token")
		return NeutralRedirect
	}

	if err := c.sessions.Bind(ctx, sessionID, token, c.sessionTTL); err != nil {
		logger.Log.WithFields(map[string]interface{}{
			"token": token,
			"error": err.Error(),
		}).Error("Failed to bind invitation token to session")
		return NeutralRedirect
	}

	logger.Log.WithFields(map[string]interface{}{
		"token": token,
		"type":  inv.Type().ID(),
	}).Info("Invitation token bound to session")
	return LoginRedirect
}

// OnUserAuthenticated is phase two, invoked after the session's user has
// registered or logged in. It re-resolves the bound token, redeems the
// invitation under the per-token lock and returns the redirect for the user.
// Every failure path returns the neutral redirect; the binding is dropped
// after exactly one redemption attempt either way.
func (c *Coordinator) OnUserAuthenticated(ctx context.Context, sessionID string, user *models.User) string {
	if sessionID == "" {
		return NeutralRedirect
	}

	binding, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Failed to read invitation session binding")
		return NeutralRedirect
	}
	if binding == nil {
		return NeutralRedirect
	}

	defer func() {
		if err := c.sessions.Delete(ctx, sessionID); err != nil {
			logger.Log.WithField("error", err.Error()).Warn("Failed to drop invitation session binding")
		}
	}()

	return c.redeem(ctx, binding.Token, user)
}

// redeem holds the per-token lock across resolve, Redeem and the single-use
// removal, so concurrent redeemers of one token serialize and the loser of a
// single-use race finds the token gone.
func (c *Coordinator) redeem(ctx context.Context, token string, user *models.User) string {
	muIface, _ := c.inFlight.LoadOrStore(token, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	inv := c.store.Get(token)
	if inv == nil {
		logger.Log.WithField("token", token).Info("Invitation redemption rejected: token no longer registered")
		return NeutralRedirect
	}

	result, err := inv.Redeem(ctx, user)
	if err != nil {
		fields := map[string]interface{}{
			"token":  token,
			"type":   inv.Type().ID(),
			"userId": user.ID.Hex(),
			"error":  err.Error(),
		}
		if errors.Is(err, apperrors.ErrRedemption) {
			logger.Log.WithFields(fields).Error("Invitation is no longer redeemable; its configuration needs attention")
		} else {
			logger.Log.WithFields(fields).Error("Invitation redemption failed")
		}
		return NeutralRedirect
	}

	if !inv.MultiUse() {
		if _, err := c.store.Remove(ctx, token); err != nil {
			logger.Log.WithFields(map[string]interface{}{
				"token": token,
				"error": err.Error(),
			}).Error("Failed to retire single-use invitation after redemption")
		}
	}

	return result.RedirectTo
}
