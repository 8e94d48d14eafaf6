package ecies

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
	"ecies256k1/internal/util/memzero"
)

// Encrypt seals plaintext to recipient using crypto/rand for the ephemeral key and IV.
func Encrypt(recipient domain.Secp256k1Public, plaintext, sharedMACData []byte) ([]byte, error) {
	return EncryptFrom(rand.Reader, recipient, plaintext, sharedMACData)
}

// EncryptFrom is Encrypt with an explicit entropy source.
func EncryptFrom(r io.Reader, recipient domain.Secp256k1Public, plaintext, sharedMACData []byte) ([]byte, error) {
	ephPriv, ephPub, err := crypto.GenerateSecp256k1From(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	defer memzero.Zero(ephPriv.Slice())

	z, err := crypto.ECDH(&ephPriv, recipient)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPublicKey) {
			return nil, ErrInvalidPeerKey
		}
		return nil, err
	}
	ke, km := deriveKeys(z[:])
	memzero.Zero(z[:])
	defer memzero.Zero(ke, km)

	iv, ciphertext, err := encryptPayload(r, ke, plaintext)
	if err != nil {
		return nil, err
	}
	return Encode(Message{
		EphemeralKey: ephPub,
		IV:           iv,
		Ciphertext:   ciphertext,
		Tag:          computeTag(km, iv, ciphertext, sharedMACData),
	}), nil
}

// Decrypt opens a message sealed to the public half of priv. sharedMACData must
// match what the sender passed. Any failure returns ErrDecrypt.
func Decrypt(message []byte, priv *domain.Secp256k1Private, sharedMACData []byte) ([]byte, error) {
	m, err := Decode(message)
	if err != nil {
		return nil, ErrDecrypt
	}

	z, err := crypto.ECDH(priv, m.EphemeralKey)
	if err != nil {
		return nil, ErrDecrypt
	}
	ke, km := deriveKeys(z[:])
	memzero.Zero(z[:])
	defer memzero.Zero(ke, km)

	if !verifyTag(km, m.IV, m.Ciphertext, sharedMACData, m.Tag) {
		return nil, ErrDecrypt
	}
	plaintext, err := decryptPayload(ke, m.IV, m.Ciphertext)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
