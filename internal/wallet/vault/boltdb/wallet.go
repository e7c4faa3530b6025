package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
)

// balanceRecord is the signed wrapper payload for the scalar balance.
type balanceRecord struct {
	Balance decimal.Decimal `json:"balance"`
}

// Balance returns the scalar spendable balance. A vault with no balance
// record yet reports zero. A balance record failing verification is
// treated as corrupted and reported, not silently zeroed.
func (s *Storage) Balance(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}

		data := bucket.Get(keyBalance)
		if data == nil {
			balance = decimal.Zero
			return nil
		}

		var rec models.SignedRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("failed to unmarshal balance record: %w", err)
		}
		if rec.Version != models.SignedRecordVersion || !verifyRecord(&rec, identity) {
			return fmt.Errorf("balance record: %w", vault.ErrInvalidSignature)
		}

		var br balanceRecord
		if err := rec.Decode(&br); err != nil {
			return fmt.Errorf("failed to decode balance record: %w", err)
		}
		balance = br.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}

// SetBalance persists the scalar spendable balance as a signed blob.
func (s *Storage) SetBalance(ctx context.Context, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return err
	}

	signed, err := signRecord(&balanceRecord{Balance: balance}, identity)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}

		data, err := json.Marshal(signed)
		if err != nil {
			return fmt.Errorf("failed to marshal balance record: %w", err)
		}
		return bucket.Put(keyBalance, data)
	})
}

// SaveCredentials seals the device's settlement-server credentials
// under the vault key before writing them to disk.
func (s *Storage) SaveCredentials(ctx context.Context, creds *vault.Credentials, vaultKey []byte) error {
	if creds == nil {
		return fmt.Errorf("credentials are nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plaintext, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	sealed, err := crypto.Encrypt(plaintext, vaultKey)
	if err != nil {
		return fmt.Errorf("failed to seal credentials: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}
		return bucket.Put(keyCredentials, sealed)
	})
}

// GetCredentials unseals stored credentials with the vault key.
func (s *Storage) GetCredentials(ctx context.Context, vaultKey []byte) (*vault.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sealed []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}
		data := bucket.Get(keyCredentials)
		if data == nil {
			return vault.ErrCredentialsNotFound
		}
		sealed = make([]byte, len(data))
		copy(sealed, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Decrypt(sealed, vaultKey)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials: %w", err)
	}

	creds := &vault.Credentials{}
	if err := json.Unmarshal(plaintext, creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}

	return creds, nil
}
