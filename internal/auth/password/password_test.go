package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_Hash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	t.Run("digest verifies against its input", func(t *testing.T) {
		digest, err := h.Hash("qwerty123")
		require.NoError(t, err)
		assert.NotEmpty(t, digest)
		assert.NotEqual(t, "qwerty123", digest)
		assert.True(t, h.Verify("qwerty123", digest))
	})

	t.Run("same input hashes to different digests", func(t *testing.T) {
		first, err := h.Hash("qwerty123")
		require.NoError(t, err)
		second, err := h.Hash("qwerty123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, h.Verify("qwerty123", first))
		assert.True(t, h.Verify("qwerty123", second))
	})
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		digest    string
		want      bool
	}{
		{"matching password", "correct-password", digest, true},
		{"wrong password", "wrong-password", digest, false},
		{"empty password", "", digest, false},
		{"malformed digest", "correct-password", "not-a-bcrypt-digest", false},
		{"empty digest", "correct-password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.plaintext, tt.digest))
		})
	}
}

func TestNewHasher_CostClamping(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of
	// failing at hash time.
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewHasher(cost)
		digest, err := h.Hash("pw")
		require.NoError(t, err)

		actual, err := bcrypt.Cost([]byte(digest))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, actual)
	}
}
