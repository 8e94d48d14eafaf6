package interfaces

import domaintypes "ecies256k1/internal/domain/types"

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	PublicKey() (domaintypes.Secp256k1Public, error)
	FingerprintIdentity() (domaintypes.Fingerprint, error)
}

// ContactService manages the local address book of recipient keys.
type ContactService interface {
	AddContact(name domaintypes.ContactName, key string) (domaintypes.Contact, error)
	RemoveContact(name domaintypes.ContactName) error
	ListContacts() ([]domaintypes.Contact, error)
	// Resolve accepts a contact name or a hex public key.
	Resolve(recipient string) (domaintypes.Secp256k1Public, error)
}

// MessageService seals plaintext to a recipient and opens sealed messages.
type MessageService interface {
	Seal(recipient string, plaintext, sharedMACData []byte) ([]byte, error)
	Open(passphrase string, message, sharedMACData []byte) ([]byte, error)
}
