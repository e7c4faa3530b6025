package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashHex returns the SHA-256 digest of data, hex encoded.
// Used for device fingerprints and record signatures.
func HashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SignRecord computes the device-bound signature over serialized record
// data: sha256(data + ":" + fingerprint), hex encoded.
func SignRecord(data []byte, fingerprint string) string {
	base := make([]byte, 0, len(data)+1+len(fingerprint))
	base = append(base, data...)
	base = append(base, ':')
	base = append(base, fingerprint...)
	return HashHex(base)
}

// VerifyRecord recomputes the signature and compares in constant time.
func VerifyRecord(data []byte, fingerprint, signature string) bool {
	expected := SignRecord(data, fingerprint)
	return hmac.Equal([]byte(expected), []byte(signature))
}
