package ecies

import (
	"crypto/aes"

	"ecies256k1/internal/domain"
)

const (
	// PubKeyLen is the length of an ephemeral public key on the wire.
	PubKeyLen = domain.Secp256k1PublicSize
	// KeyLen is the KDF output length and the tag length.
	KeyLen = 32
	// IVLen is the AES block size.
	IVLen = aes.BlockSize
	// TagLen is the HMAC-SHA-256 output length.
	TagLen = KeyLen
	// Overhead is the size of a message carrying an empty plaintext.
	Overhead = 1 + PubKeyLen + IVLen + TagLen

	header = 0x04
)

// Message is a parsed ECIES message.
type Message struct {
	EphemeralKey domain.Secp256k1Public
	IV           []byte
	Ciphertext   []byte
	Tag          []byte
}

// Encode frames m as 0x04 || R || iv || ciphertext || tag.
func Encode(m Message) []byte {
	out := make([]byte, 0, Overhead+len(m.Ciphertext))
	out = append(out, header)
	out = append(out, m.EphemeralKey[:]...)
	out = append(out, m.IV...)
	out = append(out, m.Ciphertext...)
	out = append(out, m.Tag...)
	return out
}

// Decode splits b into its parts. IV, Ciphertext and Tag alias b.
func Decode(b []byte) (Message, error) {
	if len(b) < 1 || b[0] != header {
		return Message{}, ErrMalformedMessage
	}
	if len(b) < Overhead {
		return Message{}, ErrMalformedMessage
	}
	var m Message
	copy(m.EphemeralKey[:], b[1:1+PubKeyLen])
	body := b[1+PubKeyLen : len(b)-TagLen]
	m.IV = body[:IVLen:IVLen]
	m.Ciphertext = body[IVLen:]
	m.Tag = b[len(b)-TagLen:]
	return m, nil
}
