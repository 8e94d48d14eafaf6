package store

import (
	"path/filepath"
	"sort"
	"sync"

	"ecies256k1/internal/domain"
)

const contactsFilename = "contacts.json"

// ContactFileStore keeps recipient public keys in contacts.json, keyed by name.
type ContactFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewContactFileStore returns a ContactFileStore rooted at dir.
func NewContactFileStore(dir string) *ContactFileStore {
	return &ContactFileStore{dir: dir}
}

// SaveContact inserts or replaces the contact with the same name.
func (s *ContactFileStore) SaveContact(c domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	all[c.Name] = c
	return writeJSON(s.path(), all, secretMode)
}

// LoadContact returns the named contact and whether it exists.
func (s *ContactFileStore) LoadContact(name domain.ContactName) (domain.Contact, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return domain.Contact{}, false, err
	}
	c, ok := all[name]
	return c, ok, nil
}

// DeleteContact removes the named contact and reports whether it existed.
func (s *ContactFileStore) DeleteContact(name domain.ContactName) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := all[name]; !ok {
		return false, nil
	}
	delete(all, name)
	return true, writeJSON(s.path(), all, secretMode)
}

// ListContacts returns every contact sorted by name.
func (s *ContactFileStore) ListContacts() ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Contact, 0, len(all))
	for _, c := range all {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *ContactFileStore) path() string { return filepath.Join(s.dir, contactsFilename) }

func (s *ContactFileStore) load() (map[domain.ContactName]domain.Contact, error) {
	all := make(map[domain.ContactName]domain.Contact)
	if err := readJSON(s.path(), &all); err != nil {
		return nil, err
	}
	return all, nil
}

// Compile-time assertion that ContactFileStore implements domain.ContactStore.
var _ domain.ContactStore = (*ContactFileStore)(nil)
