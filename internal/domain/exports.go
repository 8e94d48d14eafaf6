package domain

import (
	interfaces "ecies256k1/internal/domain/interfaces"
	types "ecies256k1/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ContactName      = types.ContactName
	Fingerprint      = types.Fingerprint
	Identity         = types.Identity
	Contact          = types.Contact
	Secp256k1Public  = types.Secp256k1Public
	Secp256k1Private = types.Secp256k1Private
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	ContactService  = interfaces.ContactService
	MessageService  = interfaces.MessageService
	IdentityStore   = interfaces.IdentityStore
	ContactStore    = interfaces.ContactStore
)

// Key sizes re-exported for callers that only import domain.
const (
	Secp256k1PublicSize  = types.Secp256k1PublicSize
	Secp256k1PrivateSize = types.Secp256k1PrivateSize
)
