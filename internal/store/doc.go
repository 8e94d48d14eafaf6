// Package store provides file-based persistence for ecies256k1's local state.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking, and every write goes
// through a temp file that is renamed over the target. Stored files live under
// the configured home directory.
//
// The package includes stores for:
//   - The secp256k1 identity (IdentityFileStore), sealed with a passphrase
//   - Recipient public keys by name (ContactFileStore)
package store
