// Package ecies implements the Elliptic Curve Integrated Encryption Scheme over
// secp256k1 in the form used by devp2p-style transports.
//
// # Message layout
//
//	0x04 || R (64) || iv (16) || AES-128-CTR(ke, plaintext) || tag (32)
//
// R is the sender's ephemeral public key without its format byte. The tag is
// HMAC-SHA-256 keyed with km over iv || ciphertext || sharedMACData, where
// sharedMACData is caller-supplied context that is authenticated but never
// transmitted.
//
// # Keys
//
// The ECDH x-coordinate z is expanded with the NIST SP 800-56A concatenation
// KDF (SHA-256) into 32 bytes K. ke = K[:16] and km = SHA-256(K[16:]).
//
// # Flows
//
// Encrypt:
//  1. Generate an ephemeral key pair (r, R).
//  2. z = ECDH(r, recipient), derive ke and km.
//  3. Encrypt under a fresh IV, tag, and frame.
//
// Decrypt:
//  1. Check the header byte and minimum length.
//  2. z = ECDH(recipient private, R), derive ke and km.
//  3. Verify the tag in constant time, then decrypt.
//
// # Errors
//
// Decrypt reports every failure as ErrDecrypt so a caller cannot learn whether
// framing, the ephemeral point or the tag was at fault. Encrypt returns
// ErrInvalidPeerKey for a recipient key that is not on the curve and
// ErrEntropy when the random source fails.
//
// All functions are stateless and safe for concurrent use. Ephemeral scalars,
// shared secrets and derived keys are wiped before returning.
package ecies
