// Package crypto exposes the secp256k1 primitives used by ecies256k1.
//
// Contents
//
//   - secp256k1 key generation, public-key derivation and parsing
//     (GenerateSecp256k1, PublicFromPrivate, ParsePublicKey, ParsePublicKeyHex)
//   - Elliptic-curve Diffie–Hellman returning the 32-byte x-coordinate (ECDH)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Base64 armor helpers for sealed messages (B64, DecodeArmor)
//
// # Notes
//
// Keys are fixed-size array types defined in internal/domain. Public keys
// are always the 64-byte x || y form; the 0x04 format byte is added only when
// a point is decoded. Point validation (range and curve equation) is done by
// github.com/decred/dcrd/dcrec/secp256k1/v4, and invalid points surface as
// ErrInvalidPublicKey rather than a panic.
package crypto
