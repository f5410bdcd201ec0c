package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestHash_Format(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	encoded, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"))
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHash_SaltedDifferently(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	a, err := h.Hash("secret123")
	require.NoError(t, err)
	b, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify_Argon2(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)
	encoded, err := h.Hash("secret123")
	require.NoError(t, err)

	ok, rehash, err := h.Verify("secret123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, rehash)

	ok, _, err = h.Verify("secret124", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_WeakerParamsNeedRehash(t *testing.T) {
	weak := NewPasswordHasherWithParams(Params{Time: 1, Memory: 4 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	encoded, err := weak.Hash("secret123")
	require.NoError(t, err)

	ok, rehash, err := NewPasswordHasherWithParams(testParams).Verify("secret123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, rehash)
}

func TestVerify_Legacy(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	ok, rehash, err := h.Verify("password", LegacyHash("password"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, rehash)

	ok, _, err = h.Verify("Password", LegacyHash("password"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_Malformed(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	tests := []string{
		"",
		"$argon2id$v=19$m=8192,t=1,p=1$onlysalt",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",
	}
	for _, encoded := range tests {
		_, _, err := h.Verify("x", encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, encoded)
	}
}

func TestLegacyHash_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"a", "2p"},
		{"ab", "2e9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LegacyHash(tt.in), tt.in)
	}
}

func TestLegacyHash_Wraps(t *testing.T) {
	long := strings.Repeat("z", 64)
	got := LegacyHash(long)
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "-")
	assert.Equal(t, got, LegacyHash(long))
}
