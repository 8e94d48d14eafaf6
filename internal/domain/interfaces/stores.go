package interfaces

import domaintypes "ecies256k1/internal/domain/types"

// IdentityStore persists your long-term secp256k1 key pair.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	// LoadPublicKey reads the public half without the passphrase.
	LoadPublicKey() (domaintypes.Secp256k1Public, bool, error)
}

// ContactStore keeps recipient public keys under local names.
type ContactStore interface {
	SaveContact(contact domaintypes.Contact) error
	LoadContact(name domaintypes.ContactName) (domaintypes.Contact, bool, error)
	DeleteContact(name domaintypes.ContactName) (bool, error)
	ListContacts() ([]domaintypes.Contact, error)
}
