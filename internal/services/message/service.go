package message

import (
	"github.com/rs/zerolog"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
	"ecies256k1/internal/protocol/ecies"
	"ecies256k1/internal/util/memzero"
)

// Service seals and opens ECIES messages.
//
// High-level flow:
//   - Seal: resolve the recipient (contact name or hex key), then encrypt to it.
//   - Open: unlock the local identity with the passphrase, decrypt, and wipe
//     the private key before returning.
type Service struct {
	identities domain.IdentityService
	contacts   domain.ContactService
	log        zerolog.Logger
}

// New constructs a message Service.
func New(
	identities domain.IdentityService,
	contacts domain.ContactService,
	log zerolog.Logger,
) *Service {
	return &Service{
		identities: identities,
		contacts:   contacts,
		log:        log.With().Str("component", "message").Logger(),
	}
}

// Seal encrypts plaintext to recipient. sharedMACData is authenticated but not
// included in the output; the recipient must supply the same value to Open.
func (s *Service) Seal(recipient string, plaintext, sharedMACData []byte) ([]byte, error) {
	pub, err := s.contacts.Resolve(recipient)
	if err != nil {
		return nil, err
	}
	out, err := ecies.Encrypt(pub, plaintext, sharedMACData)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("recipient", crypto.Fingerprint(pub).String()).
		Int("plaintext_bytes", len(plaintext)).
		Int("message_bytes", len(out)).
		Msg("message sealed")
	return out, nil
}

// Open decrypts a message addressed to the local identity.
func (s *Service) Open(passphrase string, message, sharedMACData []byte) ([]byte, error) {
	id, err := s.identities.LoadIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(id.Private.Slice())

	pt, err := ecies.Decrypt(message, &id.Private, sharedMACData)
	if err != nil {
		s.log.Debug().Int("message_bytes", len(message)).Msg("open failed")
		return nil, err
	}
	return pt, nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
