package models

import "time"

// PartialIDLength is the number of fingerprint characters exposed in
// signed records and over-the-air metadata. The full fingerprint never
// leaves the device.
const PartialIDLength = 10

// DeviceIdentity is the stable per-install fingerprint every local
// signature is bound to. It is derived once from install entropy and
// persisted; losing it invalidates verification of previously signed
// records.
type DeviceIdentity struct {
	CreatedAt   time.Time `json:"created_at"`
	Fingerprint string    `json:"fingerprint"` // sha256 hex of install entropy
}

// PartialID returns the public prefix of the fingerprint.
func (d *DeviceIdentity) PartialID() string {
	if len(d.Fingerprint) < PartialIDLength {
		return d.Fingerprint
	}
	return d.Fingerprint[:PartialIDLength]
}
