// Package contact manages the local address book of recipient public keys.
package contact
