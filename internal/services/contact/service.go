package contact

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
)

var (
	// ErrInvalidName is returned for names that are empty or contain unsupported characters.
	ErrInvalidName = errors.New("contact name must be 1-64 characters of letters, digits, '.', '_' or '-'")
	// ErrUnknownContact is returned when a name is neither a stored contact nor a public key.
	ErrUnknownContact = errors.New("unknown contact")

	validName = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

// Service stores and resolves recipient keys.
type Service struct {
	store domain.ContactStore
	log   zerolog.Logger
	now   func() time.Time
}

// New returns a contact service backed by the given store.
func New(s domain.ContactStore, log zerolog.Logger) *Service {
	return &Service{store: s, log: log.With().Str("component", "contact").Logger(), now: time.Now}
}

// AddContact validates key (hex, raw/prefixed/compressed) and stores it under name.
func (s *Service) AddContact(name domain.ContactName, key string) (domain.Contact, error) {
	if !validName.MatchString(name.String()) {
		return domain.Contact{}, ErrInvalidName
	}
	pub, err := crypto.ParsePublicKeyHex(key)
	if err != nil {
		return domain.Contact{}, err
	}
	c := domain.Contact{Name: name, PublicKey: pub, AddedUTC: s.now().UTC().Unix()}
	if err := s.store.SaveContact(c); err != nil {
		return domain.Contact{}, err
	}
	s.log.Info().
		Str("name", name.String()).
		Str("fingerprint", crypto.Fingerprint(pub).String()).
		Msg("contact saved")
	return c, nil
}

// RemoveContact deletes the named contact.
func (s *Service) RemoveContact(name domain.ContactName) error {
	ok, err := s.store.DeleteContact(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownContact, name)
	}
	s.log.Info().Str("name", name.String()).Msg("contact removed")
	return nil
}

// ListContacts returns all stored contacts sorted by name.
func (s *Service) ListContacts() ([]domain.Contact, error) { return s.store.ListContacts() }

// Resolve returns the public key for a stored contact name, or parses recipient
// as a hex public key when it is not a stored name.
func (s *Service) Resolve(recipient string) (domain.Secp256k1Public, error) {
	if validName.MatchString(recipient) {
		c, ok, err := s.store.LoadContact(domain.ContactName(recipient))
		if err != nil {
			return domain.Secp256k1Public{}, err
		}
		if ok {
			return c.PublicKey, nil
		}
	}
	pub, err := crypto.ParsePublicKeyHex(recipient)
	if err != nil {
		return domain.Secp256k1Public{}, fmt.Errorf("%w %q", ErrUnknownContact, recipient)
	}
	return pub, nil
}

// Compile-time assertion that Service implements domain.ContactService.
var _ domain.ContactService = (*Service)(nil)
