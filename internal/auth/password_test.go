package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_VerifiesOwnSecret(t *testing.T) {
	for _, secret := range []string{"secret123", "ñandú-pässwörd", strings.Repeat("x", 64)} {
		hashed, err := Hash(secret)
		require.NoError(t, err)
		assert.NotEqual(t, secret, hashed, "hash must not equal plaintext")
		assert.True(t, Verify(secret, hashed), "secret %q must verify", secret)
	}
}

func TestHash_RejectsOtherSecret(t *testing.T) {
	hashed, err := Hash("secret123")
	require.NoError(t, err)

	assert.False(t, Verify("secret124", hashed))
	assert.False(t, Verify("", hashed))
	assert.False(t, Verify("SECRET123", hashed))
}

func TestHash_SaltsEachCall(t *testing.T) {
	a, err := Hash("secret123")
	require.NoError(t, err)
	b, err := Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "per-record salt must make hashes differ")
	assert.True(t, strings.HasPrefix(a, "$2a$10$"), "expected bcrypt cost 10, got %s", a[:7])
}

func TestHash_EmptySecret(t *testing.T) {
	_, err := Hash("")
	assert.Error(t, err)
}

func TestVerify_MalformedHashDoesNotMatch(t *testing.T) {
	assert.False(t, Verify("secret123", "not-a-bcrypt-hash"))
	assert.False(t, Verify("secret123", ""))
}
