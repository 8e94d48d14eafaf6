package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"ecies256k1/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the 64-byte x || y form with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(pub domain.Secp256k1Public) domain.Fingerprint {
	sum := sha256.Sum256(pub[:])
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
