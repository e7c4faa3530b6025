package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
)

var (
	// BoltDB bucket names
	bucketIdentity     = []byte("identity")
	bucketTokens       = []byte("tokens")
	bucketTransactions = []byte("transactions")
	bucketWallet       = []byte("wallet")
)

// Fixed storage keys. Collections are stored as a single signed blob per
// key, matching the read-whole / write-whole mutation model.
var (
	keyDeviceIdentity = []byte("device_identity")
	keyCollection     = []byte("collection")
	keyBalance        = []byte("balance")
	keyCredentials    = []byte("credentials")
)

// Storage is the BoltDB-backed token vault.
type Storage struct {
	db     *bbolt.DB
	logger *slog.Logger

	// mu serializes every read-modify-write of the signed collections.
	// Bolt already allows one write transaction at a time, but identity
	// caching and the sign-then-write sequences span more than one
	// transaction, so the vault keeps its own single-writer guard.
	mu       sync.Mutex
	identity *models.DeviceIdentity
}

// Compile-time check that Storage implements vault.Vault
var _ vault.Vault = (*Storage)(nil)

// New opens (or creates) the vault database at dbPath.
func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, logger: logger}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// initBuckets creates all required buckets if they don't exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketIdentity, bucketTokens, bucketTransactions, bucketWallet}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}

// readCollection loads and unmarshals a signed-record collection from
// the given bucket. A missing key yields an empty collection.
func (s *Storage) readCollection(tx *bbolt.Tx, bucketName []byte) ([]models.SignedRecord, error) {
	bucket := tx.Bucket(bucketName)
	if bucket == nil {
		return nil, fmt.Errorf("bucket %s not found", bucketName)
	}

	data := bucket.Get(keyCollection)
	if data == nil {
		return []models.SignedRecord{}, nil
	}

	var records []models.SignedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}

	return records, nil
}

// writeCollection marshals and stores a signed-record collection.
func (s *Storage) writeCollection(tx *bbolt.Tx, bucketName []byte, records []models.SignedRecord) error {
	bucket := tx.Bucket(bucketName)
	if bucket == nil {
		return fmt.Errorf("bucket %s not found", bucketName)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	if err := bucket.Put(keyCollection, data); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}

	return nil
}
