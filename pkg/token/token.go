// Package token generates opaque identifiers for invitations and invite
// sessions.
package token

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh opaque invitation token. Tokens are generated
// server-side and never reissued.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewSessionID returns a fresh invite session identifier for the redemption
// cookie.
func NewSessionID() string {
	return uuid.NewString()
}
