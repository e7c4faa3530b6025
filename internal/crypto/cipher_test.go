package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeal(t *testing.T) {
	validKey := make([]byte, KeySize)
	_, _ = rand.Read(validKey)

	tests := []struct {
		name      string
		errMsg    string
		plaintext []byte
		key       []byte
		wantErr   bool
	}{
		{
			name:      "successful seal",
			plaintext: []byte("payment payload"),
			key:       validKey,
		},
		{
			name:      "empty plaintext",
			plaintext: []byte{},
			key:       validKey,
			wantErr:   true,
			errMsg:    "plaintext cannot be empty",
		},
		{
			name:      "invalid key length - too short",
			plaintext: []byte("test"),
			key:       make([]byte, 16),
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
		{
			name:      "invalid key length - too long",
			plaintext: []byte("test"),
			key:       make([]byte, 64),
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce, ciphertext, tag, err := Seal(tt.plaintext, tt.key)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Len(t, nonce, NonceSize)
			assert.Len(t, tag, TagSize)
			assert.Len(t, ciphertext, len(tt.plaintext))
			assert.NotEqual(t, tt.plaintext, ciphertext)
		})
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	_, _ = rand.Read(key)

	plaintext := []byte(`{"token_id":"TOK_123","amount":"40.00","currency":"MYR"}`)

	nonce, ciphertext, tag, err := Seal(plaintext, key)
	require.NoError(t, err)

	decrypted, err := Open(nonce, ciphertext, tag, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestOpen_WrongKey(t *testing.T) {
	key := make([]byte, KeySize)
	_, _ = rand.Read(key)
	otherKey := make([]byte, KeySize)
	_, _ = rand.Read(otherKey)

	nonce, ciphertext, tag, err := Seal([]byte("secret payment"), key)
	require.NoError(t, err)

	decrypted, err := Open(nonce, ciphertext, tag, otherKey)
	require.ErrorIs(t, err, ErrAuthTagMismatch)
	assert.Nil(t, decrypted)
}

func TestOpen_MutatedTag(t *testing.T) {
	key := make([]byte, KeySize)
	_, _ = rand.Read(key)

	nonce, ciphertext, tag, err := Seal([]byte("secret payment"), key)
	require.NoError(t, err)

	// flip one bit of the tag
	tag[0] ^= 0x01

	decrypted, err := Open(nonce, ciphertext, tag, key)
	require.ErrorIs(t, err, ErrAuthTagMismatch)
	assert.Nil(t, decrypted)
}

func TestOpen_MutatedCiphertext(t *testing.T) {
	key := make([]byte, KeySize)
	_, _ = rand.Read(key)

	nonce, ciphertext, tag, err := Seal([]byte("secret payment"), key)
	require.NoError(t, err)

	ciphertext[len(ciphertext)/2] ^= 0xFF

	decrypted, err := Open(nonce, ciphertext, tag, key)
	require.ErrorIs(t, err, ErrAuthTagMismatch)
	assert.Nil(t, decrypted)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	_, _ = rand.Read(key)

	plaintext := []byte("vault-resident secret")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(encrypted), NonceSize+len(plaintext)+TagSize)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecrypt_TooShort(t *testing.T) {
	key := make([]byte, KeySize)
	_, _ = rand.Read(key)

	_, err := Decrypt(make([]byte, NonceSize), key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}
