package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("produces a well-formed JWT", func(t *testing.T) {
		token, err := manager.GenerateToken("68b1f77bcf86cd7994390aa1")

		require.NoError(t, err)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
	})

	t.Run("round-trips the user id through the claims", func(t *testing.T) {
		userID := "68b1f77bcf86cd7994390aa1"

		token, err := manager.GenerateToken(userID)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("rejects an expired token", func(t *testing.T) {
		shortManager := NewJWTManager("testsecret123", 1*time.Millisecond)
		token, err := shortManager.GenerateToken("user123")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		claims, err := shortManager.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
		assert.Nil(t, claims)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTManager("someothersecret", 15*time.Minute)
		token, err := other.GenerateToken("user123")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := manager.GenerateToken("user123")
		require.NoError(t, err)
		tampered := token[:len(token)-5] + "XXXXX"

		claims, err := manager.ValidateToken(tampered)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		for _, token := range []string{"", "not.a.valid.token"} {
			claims, err := manager.ValidateToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		}
	})

	t.Run("sets expiry and issued-at from the configured ttl", func(t *testing.T) {
		ttl := 30 * time.Minute
		manager := NewJWTManager("testsecret123", ttl)
		before := time.Now()

		token, err := manager.GenerateToken("user123")
		require.NoError(t, err)
		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)

		assert.WithinDuration(t, before.Add(ttl), claims.ExpiresAt.Time, 2*time.Second)
		assert.WithinDuration(t, before, claims.IssuedAt.Time, 2*time.Second)
	})
}

func BenchmarkJWTManager_ValidateToken(b *testing.B) {
	manager := NewJWTManager("benchmarksecret", 15*time.Minute)
	token, _ := manager.GenerateToken("user123")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = manager.ValidateToken(token)
	}
}
