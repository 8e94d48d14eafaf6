package identity

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
	"ecies256k1/internal/store"
	"ecies256k1/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrIdentityMismatch is returned when the stored public key was not derived from the stored private key.
	ErrIdentityMismatch = errors.New("stored identity: public key does not match private key")
)

// Service manages identity key creation and access using a backing store.
//
// The identity is a single secp256k1 key pair; its public half is what
// senders encrypt to.
type Service struct {
	store domain.IdentityStore
	log   zerolog.Logger
	now   func() time.Time
}

// New returns an identity service backed by the given store.
func New(s domain.IdentityStore, log zerolog.Logger) *Service {
	return &Service{store: s, log: log.With().Str("component", "identity").Logger(), now: time.Now}
}

// GenerateIdentity creates a new identity, saves it encrypted with the passphrase,
// and returns the identity plus a short fingerprint of the public key.
func (s *Service) GenerateIdentity(
	passphrase string,
) (domain.Identity, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	priv, pub, err := crypto.GenerateSecp256k1()
	if err != nil {
		return domain.Identity{}, "", fmt.Errorf("generate key pair: %w", err)
	}
	id := domain.Identity{
		Public:     pub,
		Private:    priv,
		CreatedUTC: s.now().UTC().Unix(),
	}
	memzero.Zero(priv.Slice())

	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.Identity{}, "", err
	}
	fp := crypto.Fingerprint(id.Public)
	s.log.Info().Str("fingerprint", fp.String()).Msg("identity created")
	return id, fp, nil
}

// LoadIdentity decrypts and returns the local identity after checking that the
// stored public key matches the private scalar.
func (s *Service) LoadIdentity(passphrase string) (domain.Identity, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return domain.Identity{}, err
	}
	derived, err := crypto.PublicFromPrivate(&id.Private)
	if err != nil {
		memzero.Zero(id.Private.Slice())
		return domain.Identity{}, fmt.Errorf("stored identity: %w", err)
	}
	if derived != id.Public {
		memzero.Zero(id.Private.Slice())
		return domain.Identity{}, ErrIdentityMismatch
	}
	return id, nil
}

// PublicKey returns the local public key without unlocking the keystore.
func (s *Service) PublicKey() (domain.Secp256k1Public, error) {
	pub, ok, err := s.store.LoadPublicKey()
	if err != nil {
		return domain.Secp256k1Public{}, err
	}
	if !ok {
		return domain.Secp256k1Public{}, store.ErrNoIdentity
	}
	return pub, nil
}

// FingerprintIdentity returns a short fingerprint of the local public key.
func (s *Service) FingerprintIdentity() (domain.Fingerprint, error) {
	pub, err := s.PublicKey()
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(pub), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
