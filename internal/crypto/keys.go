package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the at-rest vault key from a PIN
const (
	// Argon2Time - iteration count (time cost)
	Argon2Time = 1
	// Argon2Memory - memory in KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - parallelism
	Argon2Threads = 4
	// Argon2KeyLen - output key length in bytes
	Argon2KeyLen = KeySize
)

// NewSessionKey generates a fresh random 32-byte key for one proximity
// connection. Session keys are never reused across connections and are
// not tied to any payment.
func NewSessionKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	return key, nil
}

// DeriveVaultKey derives the 32-byte key sealing vault-resident secrets
// (the device's server credentials) from the wallet PIN, salted with the
// device fingerprint so the same PIN yields different keys per install.
func DeriveVaultKey(pin, fingerprint string) ([]byte, error) {
	if pin == "" {
		return nil, fmt.Errorf("pin cannot be empty")
	}
	if fingerprint == "" {
		return nil, fmt.Errorf("fingerprint cannot be empty")
	}

	key := argon2.IDKey([]byte(pin), []byte(fingerprint), Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return key, nil
}
