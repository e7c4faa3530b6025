package models

import "encoding/json"

// SignedRecordVersion is the schema version written into every new
// signed record. Records with an unknown version are treated as
// unverifiable.
const SignedRecordVersion = 1

// SignedRecord wraps a stored entity with a device-bound signature.
// Signature = sha256(serialized data + ":" + full device fingerprint),
// hex encoded. DeviceID carries only the fingerprint prefix, so a record
// is verifiable only on the device that signed it; records claiming a
// foreign prefix fail verification locally.
type SignedRecord struct {
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
	DeviceID  string          `json:"device_id"` // partial fingerprint of the signer
	Version   int             `json:"version"`
}

// Decode unmarshals the wrapped data into v. It does not verify the
// signature; callers go through the vault for that.
func (r *SignedRecord) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}
