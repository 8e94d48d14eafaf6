package ecies_test

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"ecies256k1/internal/protocol/ecies"
)

func TestConcatKDF_SingleCounterBlock(t *testing.T) {
	z := bytes.Repeat([]byte{0x42}, 32)

	want := sha256.Sum256(append([]byte{0x00, 0x00, 0x00, 0x01}, z...))
	require.Equal(t, want[:], ecies.ConcatKDF(z))
}

func TestConcatKDF_DeterministicAndFixedLength(t *testing.T) {
	for _, z := range [][]byte{nil, {1}, bytes.Repeat([]byte{7}, 32), bytes.Repeat([]byte{9}, 200)} {
		a := ecies.ConcatKDF(z)
		b := ecies.ConcatKDF(bytes.Clone(z))
		require.Len(t, a, ecies.KeyLen)
		require.Equal(t, a, b)
	}
	require.NotEqual(t, ecies.ConcatKDF([]byte{1}), ecies.ConcatKDF([]byte{2}))
}
