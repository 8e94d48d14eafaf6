package crypto

import (
	"bytes"
	"encoding/base64"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeArmor reverses B64, ignoring surrounding whitespace and line breaks.
func DecodeArmor(b []byte) ([]byte, error) {
	clean := bytes.Join(bytes.Fields(b), nil)
	out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(out, clean)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
