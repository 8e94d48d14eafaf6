package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"ecies256k1/internal/domain"
	"ecies256k1/internal/util/memzero"
)

const (
	identityFilename  = "identity.json.enc"
	publicKeyFilename = "identity.pub"
)

// ErrNoIdentity is returned when no identity has been created in the home directory.
var ErrNoIdentity = errors.New("no identity found; run init first")

// IdentityFileStore persists the local identity to disk.
//
// The key pair is sealed under the passphrase in identity.json.enc. The public
// half is also written in hex to identity.pub so it can be shared without
// unlocking the keystore.
type IdentityFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir}
}

// SaveIdentity writes the encrypted identity and its public key to disk.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	sealed, err := seal(passphrase, raw, defaultScryptParams())
	if err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(s.dir, identityFilename), sealed, secretMode); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	pub := id.Public.String() + "\n"
	if err := writeAtomic(filepath.Join(s.dir, publicKeyFilename), []byte(pub), publicMode); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}
	return nil
}

// LoadIdentity reads and decrypts the identity.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readOptional(filepath.Join(s.dir, identityFilename))
	if err != nil {
		return domain.Identity{}, err
	}
	if b == nil {
		return domain.Identity{}, ErrNoIdentity
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(pt)

	var id domain.Identity
	if err := json.Unmarshal(pt, &id); err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	return id, nil
}

// LoadPublicKey returns the stored public key and whether an identity exists.
func (s *IdentityFileStore) LoadPublicKey() (domain.Secp256k1Public, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readOptional(filepath.Join(s.dir, publicKeyFilename))
	if err != nil || b == nil {
		return domain.Secp256k1Public{}, false, err
	}
	var pub domain.Secp256k1Public
	if err := pub.UnmarshalText([]byte(strings.TrimSpace(string(b)))); err != nil {
		return domain.Secp256k1Public{}, false, fmt.Errorf("decode %s: %w", publicKeyFilename, err)
	}
	return pub, true, nil
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
