package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenGenerator_Generate(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	t.Run("generates rt_{family}_{random} tokens", func(t *testing.T) {
		token, familyID, err := gen.Generate()

		require.NoError(t, err)

		parts := strings.Split(token, "_")
		require.Len(t, parts, 3)
		assert.Equal(t, "rt", parts[0])
		assert.Equal(t, familyID, parts[1])
		assert.Len(t, parts[1], 16) // 8 random bytes
		assert.Len(t, parts[2], 32) // 16 random bytes
	})

	t.Run("tokens and families never repeat", func(t *testing.T) {
		token1, familyID1, _ := gen.Generate()
		token2, familyID2, _ := gen.Generate()

		assert.NotEqual(t, token1, token2)
		assert.NotEqual(t, familyID1, familyID2)
	})
}

func TestRefreshTokenGenerator_GenerateWithFamily(t *testing.T) {
	gen := NewRefreshTokenGenerator()
	familyID := "00aa11bb22cc33dd"

	t.Run("keeps the family across rotations", func(t *testing.T) {
		token1, err := gen.GenerateWithFamily(familyID)
		require.NoError(t, err)
		token2, err := gen.GenerateWithFamily(familyID)
		require.NoError(t, err)

		assert.NotEqual(t, token1, token2)

		extracted1, err := gen.ExtractFamilyID(token1)
		require.NoError(t, err)
		extracted2, err := gen.ExtractFamilyID(token2)
		require.NoError(t, err)
		assert.Equal(t, familyID, extracted1)
		assert.Equal(t, familyID, extracted2)
	})
}

func TestRefreshTokenGenerator_ExtractFamilyID(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	t.Run("round-trips a generated token", func(t *testing.T) {
		token, want, _ := gen.Generate()

		got, err := gen.ExtractFamilyID(token)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	malformed := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"wrong prefix", "xx_00aa11bb22cc33dd_fedcba0987654321fedcba0987654321"},
		{"too few parts", "rt_singlepart"},
		{"short family", "rt_short_fedcba0987654321fedcba0987654321"},
		{"non-hex family", "rt_zzzz11bb22cc33dd_fedcba0987654321fedcba0987654321"},
	}
	for _, tt := range malformed {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := gen.ExtractFamilyID(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestRefreshTokenGenerator_Hash(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	t.Run("is deterministic", func(t *testing.T) {
		token, _, _ := gen.Generate()

		assert.Equal(t, gen.Hash(token), gen.Hash(token))
	})

	t.Run("produces a 64 char sha-256 hex digest", func(t *testing.T) {
		token, _, _ := gen.Generate()

		hash := gen.Hash(token)

		assert.Len(t, hash, 64)
		assert.Regexp(t, "^[0-9a-f]+$", hash)
	})

	t.Run("one byte of difference changes the hash", func(t *testing.T) {
		hash1 := gen.Hash("rt_00aa11bb22cc33dd_fedcba0987654321fedcba0987654321")
		hash2 := gen.Hash("rt_00aa11bb22cc33dd_fedcba0987654321fedcba0987654322")

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestRefreshTokenGenerator_CompareHashes(t *testing.T) {
	gen := NewRefreshTokenGenerator()

	t.Run("matches hashes of the same token", func(t *testing.T) {
		token, _, _ := gen.Generate()

		assert.True(t, gen.CompareHashes(gen.Hash(token), gen.Hash(token)))
	})

	t.Run("rejects hashes of different tokens", func(t *testing.T) {
		assert.False(t, gen.CompareHashes(gen.Hash("token1"), gen.Hash("token2")))
	})

	t.Run("rejects a tampered hash", func(t *testing.T) {
		hash := gen.Hash("token")
		tampered := hash[:len(hash)-1] + "x"

		assert.False(t, gen.CompareHashes(hash, tampered))
	})
}

func BenchmarkRefreshTokenGenerator_Generate(b *testing.B) {
	gen := NewRefreshTokenGenerator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gen.Generate()
	}
}
