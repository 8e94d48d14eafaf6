package types

// Identity holds your long-term secp256k1 key pair.
type Identity struct {
	Public     Secp256k1Public  `json:"public"`
	Private    Secp256k1Private `json:"private"`
	CreatedUTC int64            `json:"created_utc"`
}

// Contact binds a local name to a recipient public key.
type Contact struct {
	Name      ContactName     `json:"name"`
	PublicKey Secp256k1Public `json:"public_key"`
	AddedUTC  int64           `json:"added_utc"`
}
