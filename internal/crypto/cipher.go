package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// NonceSize - AES-GCM nonce size (12 bytes standard)
	NonceSize = 12
	// TagSize - GCM authentication tag size
	TagSize = 16
	// KeySize - AES-256 key size
	KeySize = 32
)

// ErrAuthTagMismatch indicates the GCM authentication tag did not match.
// The ciphertext must be discarded in full; no partial plaintext is ever
// returned.
var ErrAuthTagMismatch = errors.New("authentication tag mismatch")

// Seal encrypts plaintext with AES-256-GCM and returns the nonce,
// ciphertext, and authentication tag as separate values. The split form
// matches the over-the-air payload layout, where the tag travels in its
// own field and is checked before the blob is trusted.
func Seal(plaintext, key []byte) (nonce, ciphertext, tag []byte, err error) {
	if len(plaintext) == 0 {
		return nil, nil, nil, fmt.Errorf("plaintext cannot be empty")
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, nil, nil, err
	}

	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// GCM appends the tag to the ciphertext; split it off
	sealed := aesGCM.Seal(nil, nonce, plaintext, nil)
	ciphertext = sealed[:len(sealed)-TagSize]
	tag = sealed[len(sealed)-TagSize:]

	return nonce, ciphertext, tag, nil
}

// Open decrypts ciphertext sealed by Seal, verifying the authentication
// tag first. Any mismatch, from a wrong key or a mutated tag or blob,
// returns ErrAuthTagMismatch and no data.
func Open(nonce, ciphertext, tag, key []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("tag must be %d bytes, got %d", TagSize, len(tag))
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthTagMismatch
	}

	return plaintext, nil
}

// Encrypt seals plaintext into the single-blob form nonce + ciphertext +
// tag. Used for at-rest sealing inside the vault, where the split layout
// is not needed.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	nonce, ciphertext, tag, err := Seal(plaintext, key)
	if err != nil {
		return nil, err
	}

	result := make([]byte, 0, len(nonce)+len(ciphertext)+len(tag))
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	result = append(result, tag...)

	return result, nil
}

// Decrypt reverses Encrypt. Expects nonce (12 bytes) + ciphertext +
// tag (16 bytes).
func Decrypt(encrypted, key []byte) ([]byte, error) {
	if len(encrypted) < NonceSize+TagSize {
		return nil, fmt.Errorf("encrypted data too short")
	}

	nonce := encrypted[:NonceSize]
	ciphertext := encrypted[NonceSize : len(encrypted)-TagSize]
	tag := encrypted[len(encrypted)-TagSize:]

	return Open(nonce, ciphertext, tag, key)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}
