// Package message seals plaintext to recipients and opens sealed messages
// addressed to the local identity, using the ECIES scheme in
// internal/protocol/ecies.
package message
