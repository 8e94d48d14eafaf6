package ecies

import "errors"

var (
	// ErrInvalidPeerKey is returned when a public key does not decode to a point on secp256k1.
	ErrInvalidPeerKey = errors.New("ecies: invalid peer public key")
	// ErrMalformedMessage is returned by Decode for a short message or a wrong header byte.
	ErrMalformedMessage = errors.New("ecies: malformed message")
	// ErrEntropy is returned when the random source cannot supply bytes.
	ErrEntropy = errors.New("ecies: entropy source failure")
	// ErrDecrypt is the only error Decrypt returns.
	ErrDecrypt = errors.New("ecies: decryption failed")
)
