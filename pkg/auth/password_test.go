package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces a bcrypt hash the original verifies against", func(t *testing.T) {
		password := "mysecretpassword"

		hash, err := HashPassword(password)

		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
	})

	t.Run("salts every hash", func(t *testing.T) {
		hash1, err := HashPassword("testpassword")
		require.NoError(t, err)
		hash2, err := HashPassword("testpassword")
		require.NoError(t, err)

		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("rejects passwords over the 72 byte bcrypt limit", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("x", 73))
		assert.Error(t, err)

		hash, err := HashPassword(strings.Repeat("x", 72))
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})

	t.Run("handles non-ascii passwords", func(t *testing.T) {
		password := "пароль Олега 🔐"

		hash, err := HashPassword(password)

		require.NoError(t, err)
		assert.NoError(t, CheckPassword(password, hash))
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correctpassword")
	require.NoError(t, err)

	t.Run("accepts the matching password", func(t *testing.T) {
		assert.NoError(t, CheckPassword("correctpassword", hash))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		err := CheckPassword("wrongpassword", hash)
		assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		assert.Error(t, CheckPassword("CorrectPassword", hash))
	})

	t.Run("rejects a broken hash", func(t *testing.T) {
		assert.Error(t, CheckPassword("correctpassword", "notavalidhash"))
		assert.Error(t, CheckPassword("correctpassword", ""))
	})
}

func BenchmarkCheckPassword(b *testing.B) {
	hash, _ := HashPassword("benchmarkpassword")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckPassword("benchmarkpassword", hash)
	}
}
