package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionKey(t *testing.T) {
	k1, err := NewSessionKey()
	require.NoError(t, err)
	assert.Len(t, k1, KeySize)

	k2, err := NewSessionKey()
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2, "session keys must be fresh per connection")
}

func TestDeriveVaultKey(t *testing.T) {
	fp := HashHex([]byte("install"))

	k1, err := DeriveVaultKey("123456", fp)
	require.NoError(t, err)
	assert.Len(t, k1, KeySize)

	// same inputs, same key
	k2, err := DeriveVaultKey("123456", fp)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	// different pin or fingerprint, different key
	k3, err := DeriveVaultKey("654321", fp)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	k4, err := DeriveVaultKey("123456", HashHex([]byte("other install")))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestDeriveVaultKey_Validation(t *testing.T) {
	_, err := DeriveVaultKey("", "fp")
	require.Error(t, err)

	_, err = DeriveVaultKey("123456", "")
	require.Error(t, err)
}
