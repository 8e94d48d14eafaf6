package types

// ContactName is the local alias a recipient public key is stored under.
type ContactName string

// String returns the string form of the contact name.
func (n ContactName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
