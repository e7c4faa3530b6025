package boltdb

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"go.etcd.io/bbolt"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/models"
)

// identitySeq separates identities derived within the same nanosecond
// (shared test hosts, restored backups).
var identitySeq atomic.Uint64

// DeviceIdentity returns the persisted install fingerprint, deriving and
// persisting a new one on first call. Never fails outright: when install
// entropy is unavailable, a random fallback fingerprint is derived
// instead.
func (s *Storage) DeviceIdentity(ctx context.Context) (*models.DeviceIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviceIdentityLocked()
}

// deviceIdentityLocked loads, or derives and persists, the identity.
// Caller must hold s.mu.
func (s *Storage) deviceIdentityLocked() (*models.DeviceIdentity, error) {
	if s.identity != nil {
		return s.identity, nil
	}

	var identity *models.DeviceIdentity
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}
		data := bucket.Get(keyDeviceIdentity)
		if data == nil {
			return nil
		}
		identity = &models.DeviceIdentity{}
		return json.Unmarshal(data, identity)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load device identity: %w", err)
	}

	if identity != nil {
		s.identity = identity
		return identity, nil
	}

	// First run: derive and persist. The fingerprint must never change
	// for the life of the install.
	identity = &models.DeviceIdentity{
		Fingerprint: deriveFingerprint(),
		CreatedAt:   time.Now().UTC(),
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}
		data, err := json.Marshal(identity)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}
		return bucket.Put(keyDeviceIdentity, data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist device identity: %w", err)
	}

	s.logger.Info("derived new device identity", "device_id", identity.PartialID())
	s.identity = identity
	return identity, nil
}

// deriveFingerprint hashes install entropy into a stable fingerprint.
// Falls back to random material when host entropy is unavailable.
func deriveFingerprint() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		fallback := make([]byte, 32)
		if _, err := rand.Read(fallback); err != nil {
			// last resort: time-only entropy
			return crypto.HashHex([]byte(fmt.Sprintf("fallback-%d", time.Now().UnixNano())))
		}
		return crypto.HashHex(append([]byte("fallback-"), fallback...))
	}

	entropy := fmt.Sprintf("%s-%s-%s-%d-%d",
		hostname, runtime.GOOS, runtime.GOARCH,
		time.Now().UnixNano(), identitySeq.Add(1))
	return crypto.HashHex([]byte(entropy))
}

// Sign wraps data in a SignedRecord bound to the device fingerprint.
// Pure function of the serialized data and the fingerprint.
func (s *Storage) Sign(ctx context.Context, data any) (*models.SignedRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, err := s.deviceIdentityLocked()
	if err != nil {
		return nil, err
	}
	return signRecord(data, identity)
}

// signRecord builds the signed wrapper without touching storage state.
func signRecord(data any, identity *models.DeviceIdentity) (*models.SignedRecord, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record data: %w", err)
	}

	return &models.SignedRecord{
		Data:      raw,
		Signature: crypto.SignRecord(raw, identity.Fingerprint),
		DeviceID:  identity.PartialID(),
		Version:   models.SignedRecordVersion,
	}, nil
}

// Verify recomputes a record's signature against the local fingerprint.
// Returns false, never an error, on any mismatch or malformed input.
// Records claiming a foreign device prefix cannot be verified locally
// and also return false.
func (s *Storage) Verify(ctx context.Context, rec *models.SignedRecord) bool {
	if rec == nil || len(rec.Data) == 0 || rec.Signature == "" {
		return false
	}
	if rec.Version != models.SignedRecordVersion {
		return false
	}

	s.mu.Lock()
	identity, err := s.deviceIdentityLocked()
	s.mu.Unlock()
	if err != nil {
		return false
	}

	return verifyRecord(rec, identity)
}

func verifyRecord(rec *models.SignedRecord, identity *models.DeviceIdentity) bool {
	if rec.DeviceID != identity.PartialID() {
		return false
	}
	return crypto.VerifyRecord(rec.Data, identity.Fingerprint, rec.Signature)
}
