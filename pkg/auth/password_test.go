package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("stores a bcrypt hash, never the plaintext", func(t *testing.T) {
		hash, err := HashPassword("admin-password")

		require.NoError(t, err)
		assert.NotContains(t, hash, "admin-password")
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin-password")))
	})

	t.Run("salts every hash", func(t *testing.T) {
		hash1, err := HashPassword("same")
		require.NoError(t, err)
		hash2, err := HashPassword("same")
		require.NoError(t, err)

		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("rejects passwords longer than 72 bytes", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("x", 100))

		assert.Error(t, err)
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{"matching password", "S3cret!", hash, false},
		{"wrong password", "s3cret!", hash, true},
		{"empty password", "", hash, true},
		{"malformed hash", "S3cret!", "not-a-hash", true},
		{"empty hash", "S3cret!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
