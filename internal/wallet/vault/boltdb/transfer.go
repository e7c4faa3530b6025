package boltdb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/models"
)

// EncryptForTransfer seals data with AES-256-GCM under the per-connection
// session key and returns the over-the-air payload. The GCM tag travels
// in its own field so the receiver can reject tampered blobs before
// decryption.
func (s *Storage) EncryptForTransfer(ctx context.Context, data any, sessionKey []byte) (*models.SecurePaymentPayload, error) {
	s.mu.Lock()
	identity, err := s.deviceIdentityLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer data: %w", err)
	}

	nonce, ciphertext, tag, err := crypto.Seal(plaintext, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt transfer payload: %w", err)
	}

	return &models.SecurePaymentPayload{
		EncryptedBlob: base64.StdEncoding.EncodeToString(ciphertext),
		AuthTag:       base64.StdEncoding.EncodeToString(tag),
		IV:            base64.StdEncoding.EncodeToString(nonce),
		Algorithm:     models.PayloadAlgorithm,
		Metadata: models.PayloadMetadata{
			SenderDeviceID: identity.PartialID(),
			Timestamp:      time.Now().UTC(),
			Algorithm:      models.PayloadAlgorithm,
			Version:        models.PayloadVersion,
		},
	}, nil
}

// DecryptFromTransfer verifies the payload's authentication tag and
// returns the plaintext. Fails closed: a tag mismatch or malformed
// payload yields crypto.ErrAuthTagMismatch (or a format error) and no
// data, never a partial result.
func (s *Storage) DecryptFromTransfer(ctx context.Context, payload *models.SecurePaymentPayload, sessionKey []byte) ([]byte, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload is nil")
	}
	if payload.Algorithm != models.PayloadAlgorithm {
		return nil, fmt.Errorf("unsupported payload algorithm %q", payload.Algorithm)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(payload.EncryptedBlob)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encrypted blob: %w", err)
	}
	tag, err := base64.StdEncoding.DecodeString(payload.AuthTag)
	if err != nil {
		return nil, fmt.Errorf("failed to decode auth tag: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil {
		return nil, fmt.Errorf("failed to decode iv: %w", err)
	}

	plaintext, err := crypto.Open(nonce, ciphertext, tag, sessionKey)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}
