package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
)

// SaveToken stores or replaces a token by TokenID. The whole collection
// is read, the mutated record re-signed, and the collection written
// back as one blob.
func (s *Storage) SaveToken(ctx context.Context, token *models.AuthorizationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return err
	}

	signed, err := signRecord(token, identity)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		records, err := s.readCollection(tx, bucketTokens)
		if err != nil {
			return err
		}

		replaced := false
		for i, rec := range records {
			var existing models.AuthorizationToken
			if err := rec.Decode(&existing); err != nil {
				continue
			}
			if existing.TokenID == token.TokenID {
				records[i] = *signed
				replaced = true
				break
			}
		}
		if !replaced {
			records = append(records, *signed)
		}

		return s.writeCollection(tx, bucketTokens, records)
	})
}

// GetTokens returns every verifiable stored token. Records failing
// self-verification are excluded and logged, never silently dropped or
// returned.
func (s *Storage) GetTokens(ctx context.Context) ([]*models.AuthorizationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return nil, err
	}

	var tokens []*models.AuthorizationToken
	err = s.db.View(func(tx *bbolt.Tx) error {
		records, err := s.readCollection(tx, bucketTokens)
		if err != nil {
			return err
		}

		for i := range records {
			rec := &records[i]
			if rec.Version != models.SignedRecordVersion || !verifyRecord(rec, identity) {
				s.logger.Warn("excluding token with invalid signature",
					"device_id", rec.DeviceID,
					"error", vault.ErrInvalidSignature)
				continue
			}

			token := &models.AuthorizationToken{}
			if err := rec.Decode(token); err != nil {
				s.logger.Warn("excluding malformed token record", "error", err)
				continue
			}
			tokens = append(tokens, token)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens: %w", err)
	}

	return tokens, nil
}

// GetActiveTokens returns tokens that count toward authorized spend:
// status active, not expired, positive remaining balance. Expiry always
// wins over the stored status field.
func (s *Storage) GetActiveTokens(ctx context.Context) ([]*models.AuthorizationToken, error) {
	tokens, err := s.GetTokens(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	active := make([]*models.AuthorizationToken, 0, len(tokens))
	for _, token := range tokens {
		if token.IsSpendable(now) {
			active = append(active, token)
		}
	}

	return active, nil
}

// DeleteToken removes an active, unexpired token from the vault.
// Deleting a used or expired token would erase settlement evidence, so
// it fails with ErrNotDeletable.
func (s *Storage) DeleteToken(ctx context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bbolt.Tx) error {
		records, err := s.readCollection(tx, bucketTokens)
		if err != nil {
			return err
		}

		for i, rec := range records {
			var token models.AuthorizationToken
			if err := rec.Decode(&token); err != nil {
				continue
			}
			if token.TokenID != tokenID {
				continue
			}

			if token.Status != models.TokenStatusActive || token.IsExpired(time.Now().UTC()) {
				return vault.ErrNotDeletable
			}

			records = append(records[:i], records[i+1:]...)
			return s.writeCollection(tx, bucketTokens, records)
		}

		return vault.ErrTokenNotFound
	})
}
