package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(0)

	digest, err := hasher.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, hasher.Verify("secret123", digest))
	assert.False(t, hasher.Verify("secret124", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	hasher := NewPasswordHasher(0)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(0)

	assert.False(t, hasher.Verify("secret123", ""))
	assert.False(t, hasher.Verify("secret123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("secret123", "$2a$10$tooshort"))
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	// out-of-range costs fall back to the library default and still work
	for _, cost := range []int{-1, 0, 3, 99} {
		hasher := NewPasswordHasher(cost)
		digest, err := hasher.Hash("p")
		assert.NoError(t, err)
		assert.True(t, hasher.Verify("p", digest))
	}
}
