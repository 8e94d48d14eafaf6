package types

import (
	"encoding/hex"
	"fmt"
)

const (
	// Secp256k1PublicSize is the length of an uncompressed point without
	// its 0x04 format byte.
	Secp256k1PublicSize = 64
	// Secp256k1PrivateSize is the length of a big-endian scalar.
	Secp256k1PrivateSize = 32
)

// Secp256k1Public is an uncompressed secp256k1 point encoded as x || y.
type Secp256k1Public [Secp256k1PublicSize]byte

// Slice returns the key as a []byte.
func (p Secp256k1Public) Slice() []byte { return p[:] }

// String returns the lower-case hex form of the key.
func (p Secp256k1Public) String() string { return hex.EncodeToString(p[:]) }

// MarshalText encodes the key as hex so JSON files stay readable.
func (p Secp256k1Public) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(p)))
	hex.Encode(out, p[:])
	return out, nil
}

// UnmarshalText decodes a hex key written by MarshalText.
func (p *Secp256k1Public) UnmarshalText(text []byte) error {
	if hex.DecodedLen(len(text)) != Secp256k1PublicSize {
		return fmt.Errorf("secp256k1 public: want %d hex chars, got %d", 2*Secp256k1PublicSize, len(text))
	}
	_, err := hex.Decode(p[:], text)
	return err
}

// Secp256k1Private is a secp256k1 scalar in big-endian form.
type Secp256k1Private [Secp256k1PrivateSize]byte

// Slice returns the key as a []byte.
func (k *Secp256k1Private) Slice() []byte { return k[:] }
