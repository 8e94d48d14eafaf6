package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"ecies256k1/internal/domain"
)

const (
	// SharedSecretSize is the length of an ECDH output (the x-coordinate).
	SharedSecretSize = 32

	formatUncompressed = 0x04
)

var (
	// ErrInvalidPublicKey is returned when bytes do not decode to a point on secp256k1.
	ErrInvalidPublicKey = errors.New("invalid secp256k1 public key")
	// ErrInvalidPrivateKey is returned for a zero scalar or one not below the group order.
	ErrInvalidPrivateKey = errors.New("invalid secp256k1 private key")
)

// GenerateSecp256k1 returns a fresh secp256k1 key pair drawn from crypto/rand.
func GenerateSecp256k1() (priv domain.Secp256k1Private, pub domain.Secp256k1Public, err error) {
	return GenerateSecp256k1From(rand.Reader)
}

// GenerateSecp256k1From returns a fresh key pair using r as the entropy source.
func GenerateSecp256k1From(r io.Reader) (priv domain.Secp256k1Private, pub domain.Secp256k1Public, err error) {
	sk, err := secp256k1.GeneratePrivateKeyFromRand(r)
	if err != nil {
		return priv, pub, err
	}
	defer sk.Zero()

	sk.Key.PutBytes((*[32]byte)(&priv))
	pub = encodePublic(sk.PubKey())
	return priv, pub, nil
}

// PublicFromPrivate derives the public point for priv.
func PublicFromPrivate(priv *domain.Secp256k1Private) (domain.Secp256k1Public, error) {
	sk, err := privateKey(priv)
	if err != nil {
		return domain.Secp256k1Public{}, err
	}
	defer sk.Zero()
	return encodePublic(sk.PubKey()), nil
}

// ECDH multiplies pub by the scalar priv and returns the x-coordinate of the result.
func ECDH(priv *domain.Secp256k1Private, pub domain.Secp256k1Public) (out [SharedSecretSize]byte, err error) {
	pk, err := decodePublic(pub)
	if err != nil {
		return out, err
	}
	sk, err := privateKey(priv)
	if err != nil {
		return out, err
	}
	defer sk.Zero()

	secret := secp256k1.GenerateSharedSecret(sk, pk)
	copy(out[:], secret)
	for i := range secret {
		secret[i] = 0
	}
	return out, nil
}

// ParsePublicKey accepts a 64-byte x || y key, a 65-byte 0x04-prefixed key or a
// 33-byte compressed key and returns the validated 64-byte form.
func ParsePublicKey(b []byte) (domain.Secp256k1Public, error) {
	var raw []byte
	switch len(b) {
	case domain.Secp256k1PublicSize:
		raw = make([]byte, 0, domain.Secp256k1PublicSize+1)
		raw = append(raw, formatUncompressed)
		raw = append(raw, b...)
	case secp256k1.PubKeyBytesLenUncompressed, secp256k1.PubKeyBytesLenCompressed:
		raw = b
	default:
		return domain.Secp256k1Public{}, fmt.Errorf("%w: unexpected length %d", ErrInvalidPublicKey, len(b))
	}
	pk, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return domain.Secp256k1Public{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return encodePublic(pk), nil
}

// ParsePublicKeyHex decodes a hex public key (optionally 0x-prefixed) in any
// form ParsePublicKey accepts.
func ParsePublicKeyHex(s string) (domain.Secp256k1Public, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return domain.Secp256k1Public{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return ParsePublicKey(b)
}

func decodePublic(pub domain.Secp256k1Public) (*secp256k1.PublicKey, error) {
	var raw [secp256k1.PubKeyBytesLenUncompressed]byte
	raw[0] = formatUncompressed
	copy(raw[1:], pub[:])
	pk, err := secp256k1.ParsePubKey(raw[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pk, nil
}

func encodePublic(pk *secp256k1.PublicKey) (pub domain.Secp256k1Public) {
	copy(pub[:], pk.SerializeUncompressed()[1:])
	return pub
}

func privateKey(priv *domain.Secp256k1Private) (*secp256k1.PrivateKey, error) {
	var s secp256k1.ModNScalar
	defer s.Zero()
	if overflow := s.SetBytes((*[32]byte)(priv)); overflow != 0 || s.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return secp256k1.NewPrivateKey(&s), nil
}
