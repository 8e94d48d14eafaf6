package crypto_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
)

const (
	generatorHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	doubleGeneratorX = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
)

func scalar(v byte) *domain.Secp256k1Private {
	var k domain.Secp256k1Private
	k[31] = v
	return &k
}

func TestECDH_BothSidesAgree(t *testing.T) {
	aPriv, aPub, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)
	bPriv, bPub, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)

	ab, err := crypto.ECDH(&aPriv, bPub)
	require.NoError(t, err)
	ba, err := crypto.ECDH(&bPriv, aPub)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestECDH_KnownPoints(t *testing.T) {
	g, err := crypto.ParsePublicKeyHex(generatorHex)
	require.NoError(t, err)

	one, err := crypto.ECDH(scalar(1), g)
	require.NoError(t, err)
	require.Equal(t, generatorHex[:64], hex.EncodeToString(one[:]))

	two, err := crypto.ECDH(scalar(2), g)
	require.NoError(t, err)
	require.Equal(t, doubleGeneratorX, hex.EncodeToString(two[:]))
}

func TestPublicFromPrivate_MatchesGenerator(t *testing.T) {
	pub, err := crypto.PublicFromPrivate(scalar(1))
	require.NoError(t, err)
	require.Equal(t, generatorHex, pub.String())

	priv, want, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)
	got, err := crypto.PublicFromPrivate(&priv)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestECDH_RejectsPointOffCurve(t *testing.T) {
	var pub domain.Secp256k1Public
	pub[31] = 1 // x = 1
	pub[63] = 1 // y = 1

	_, err := crypto.ECDH(scalar(1), pub)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestECDH_RejectsCoordinateOutOfField(t *testing.T) {
	var pub domain.Secp256k1Public
	for i := range pub {
		pub[i] = 0xff
	}
	_, err := crypto.ECDH(scalar(1), pub)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestECDH_RejectsInvalidScalar(t *testing.T) {
	g, err := crypto.ParsePublicKeyHex(generatorHex)
	require.NoError(t, err)

	_, err = crypto.ECDH(scalar(0), g)
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)

	var big domain.Secp256k1Private
	for i := range big {
		big[i] = 0xff
	}
	_, err = crypto.ECDH(&big, g)
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
}

func TestGenerateSecp256k1From_PropagatesEntropyFailure(t *testing.T) {
	_, _, err := crypto.GenerateSecp256k1From(failingReader{})
	require.Error(t, err)
}

func TestParsePublicKey_AcceptedForms(t *testing.T) {
	want, err := crypto.ParsePublicKeyHex(generatorHex)
	require.NoError(t, err)

	prefixed, err := crypto.ParsePublicKeyHex("04" + generatorHex)
	require.NoError(t, err)
	require.Equal(t, want, prefixed)

	// G has an even y, so its compressed form uses the 0x02 prefix.
	compressed, err := crypto.ParsePublicKeyHex("02" + generatorHex[:64])
	require.NoError(t, err)
	require.Equal(t, want, compressed)

	withPrefix, err := crypto.ParsePublicKeyHex("0x" + generatorHex)
	require.NoError(t, err)
	require.Equal(t, want, withPrefix)

	_, err = crypto.ParsePublicKey(make([]byte, 10))
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)

	_, err = crypto.ParsePublicKeyHex("zz")
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestFingerprint_StableAndShort(t *testing.T) {
	_, pub, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)

	fp := crypto.Fingerprint(pub)
	require.Len(t, fp.String(), 20)
	require.Equal(t, fp, crypto.Fingerprint(pub))
}

func TestDecodeArmor_IgnoresLineBreaks(t *testing.T) {
	msg := []byte("sealed bytes")
	armored := crypto.B64(msg)
	wrapped := armored[:4] + "\n" + armored[4:] + "\n"

	got, err := crypto.DecodeArmor([]byte(wrapped))
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }
