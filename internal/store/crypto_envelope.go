package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"ecies256k1/internal/util/memzero"
)

const (
	// The current supported version of the encrypted blob format stored on disk.
	keystoreFormatVersion = 1

	keystoreSaltSize = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the blob was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted identity")

	// keystoreAAD binds sealed blobs to this application and format.
	keystoreAAD = []byte("ecies256k1-keystore-v1")
)

// scryptParams are the key-derivation costs recorded alongside each blob.
type scryptParams struct {
	N int `json:"scrypt_N"`
	R int `json:"scrypt_r"`
	P int `json:"scrypt_p"`
}

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	scryptParams
	Cipher []byte `json:"cipher"`
}

// defaultScryptParams are the interactive-login costs from the scrypt paper.
func defaultScryptParams() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// seal derives a key from passphrase and encrypts raw into a JSON blob.
func seal(passphrase string, raw []byte, params scryptParams) ([]byte, error) {
	salt := make([]byte, keystoreSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := keystoreAEAD(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	// Zero nonce: every blob gets a fresh salt and therefore a fresh key.
	nonce := make([]byte, chacha20poly1305.NonceSize)
	ct := aead.Seal(nil, nonce, raw, blobAAD(salt))

	return json.Marshal(blob{
		V:            keystoreFormatVersion,
		Salt:         salt,
		scryptParams: params,
		Cipher:       ct,
	})
}

// open reverses seal using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("parse keystore: %w", err)
	}
	if bl.V != keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	if len(bl.Salt) != keystoreSaltSize {
		return nil, ErrWrongPassphrase
	}
	aead, err := keystoreAEAD(passphrase, bl.Salt, bl.scryptParams)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	pt, err := aead.Open(nil, nonce, bl.Cipher, blobAAD(bl.Salt))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func keystoreAEAD(passphrase string, salt []byte, p scryptParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive keystore key: %w", err)
	}
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}

func blobAAD(salt []byte) []byte {
	aad := make([]byte, 0, len(keystoreAAD)+len(salt))
	aad = append(aad, keystoreAAD...)
	return append(aad, salt...)
}
