package ecies

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	"ecies256k1/internal/util/memzero"
)

// deriveKeys expands the shared secret z into the AES key ke and the MAC key km.
func deriveKeys(z []byte) (ke, km []byte) {
	k := ConcatKDF(z)
	defer memzero.Zero(k)

	ke = make([]byte, KeyLen/2)
	copy(ke, k[:KeyLen/2])
	sum := sha256.Sum256(k[KeyLen/2:])
	km = sum[:]
	return ke, km
}

// encryptPayload encrypts plaintext under ke with a fresh IV read from rand.
func encryptPayload(rand io.Reader, ke, plaintext []byte) (iv, ciphertext []byte, err error) {
	iv = make([]byte, IVLen)
	if _, err := io.ReadFull(rand, iv); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	ciphertext, err = xorKeyStream(ke, iv, plaintext)
	if err != nil {
		return nil, nil, err
	}
	return iv, ciphertext, nil
}

// decryptPayload is the CTR inverse of encryptPayload.
func decryptPayload(ke, iv, ciphertext []byte) ([]byte, error) {
	return xorKeyStream(ke, iv, ciphertext)
}

func xorKeyStream(ke, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(ke)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}

// computeTag returns HMAC-SHA-256(km, iv || ciphertext || sharedMACData).
func computeTag(km, iv, ciphertext, sharedMACData []byte) []byte {
	mac := hmac.New(sha256.New, km)
	mac.Write(iv)
	mac.Write(ciphertext)
	mac.Write(sharedMACData)
	return mac.Sum(nil)
}

// verifyTag recomputes the tag and compares it with hmac.Equal, which runs in
// constant time for equal-length inputs.
func verifyTag(km, iv, ciphertext, sharedMACData, tag []byte) bool {
	return hmac.Equal(computeTag(km, iv, ciphertext, sharedMACData), tag)
}
