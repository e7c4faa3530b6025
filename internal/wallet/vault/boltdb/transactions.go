package boltdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
)

// SaveTransaction appends a transaction to the signed collection,
// filling ID, timestamp and sync status when unset. Transactions are
// signed once at creation and never re-created.
func (s *Storage) SaveTransaction(ctx context.Context, txn *models.OfflineTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if txn.ID == "" {
		txn.ID = fmt.Sprintf("offline_tx_%s", uuid.New().String())
	}
	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now().UTC()
	}
	if txn.SyncStatus == "" {
		txn.SyncStatus = models.SyncStatusPending
	}

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return err
	}

	signed, err := signRecord(txn, identity)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		records, err := s.readCollection(tx, bucketTransactions)
		if err != nil {
			return err
		}

		records = append(records, *signed)
		return s.writeCollection(tx, bucketTransactions, records)
	})
}

// GetTransactions returns every verifiable stored transaction. Records
// failing self-verification are excluded and logged.
func (s *Storage) GetTransactions(ctx context.Context) ([]*models.OfflineTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return nil, err
	}

	var txns []*models.OfflineTransaction
	err = s.db.View(func(tx *bbolt.Tx) error {
		records, err := s.readCollection(tx, bucketTransactions)
		if err != nil {
			return err
		}

		for i := range records {
			rec := &records[i]
			if rec.Version != models.SignedRecordVersion || !verifyRecord(rec, identity) {
				s.logger.Warn("excluding transaction with invalid signature",
					"device_id", rec.DeviceID,
					"error", vault.ErrInvalidSignature)
				continue
			}

			txn := &models.OfflineTransaction{}
			if err := rec.Decode(txn); err != nil {
				s.logger.Warn("excluding malformed transaction record", "error", err)
				continue
			}
			txns = append(txns, txn)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return txns, nil
}

// UpdateTransactionStatus moves a transaction to the given sync status
// and re-signs the mutated record. SyncStatus is the only mutable field
// of a stored transaction.
func (s *Storage) UpdateTransactionStatus(ctx context.Context, txID string, status models.SyncStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		records, err := s.readCollection(tx, bucketTransactions)
		if err != nil {
			return err
		}

		for i, rec := range records {
			var txn models.OfflineTransaction
			if err := rec.Decode(&txn); err != nil {
				continue
			}
			if txn.ID != txID {
				continue
			}

			txn.SyncStatus = status

			signed, err := signRecord(&txn, identity)
			if err != nil {
				return err
			}
			records[i] = *signed

			return s.writeCollection(tx, bucketTransactions, records)
		}

		return vault.ErrTransactionNotFound
	})
}
