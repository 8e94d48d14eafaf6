package ecies

import (
	"crypto/sha256"
	"encoding/binary"
)

// ConcatKDF is the NIST SP 800-56A (5.8.1) concatenation KDF with SHA-256 and
// no OtherInfo. It returns KeyLen bytes.
//
// The repetition count is computed as ((KeyLen+7)*8)/(blockSize*8) and the
// counter runs from 1 through reps+1. For KeyLen = 32 this hashes exactly
// one block; the arithmetic must stay as is to interoperate with existing
// peers.
func ConcatKDF(z []byte) []byte {
	h := sha256.New()
	reps := ((KeyLen + 7) * 8) / (h.BlockSize() * 8)

	var counter [4]byte
	key := make([]byte, 0, (reps+1)*h.Size())
	for c := 1; c <= reps+1; c++ {
		binary.BigEndian.PutUint32(counter[:], uint32(c))
		h.Reset()
		h.Write(counter[:])
		h.Write(z)
		key = h.Sum(key)
	}
	return key[:KeyLen]
}
