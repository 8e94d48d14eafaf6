package app

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"ecies256k1/internal/domain"
	contactsvc "ecies256k1/internal/services/contact"
	identitysvc "ecies256k1/internal/services/identity"
	messagesvc "ecies256k1/internal/services/message"
	"ecies256k1/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config   Config
	Log      zerolog.Logger
	Identity domain.IdentityService
	Contacts domain.ContactService
	Messages domain.MessageService
}

// NewWire constructs the dependency graph from cfg, logging to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log := NewLogger(logOut, cfg.LogLevel)

	// File-based stores
	identityStore := store.NewIdentityFileStore(cfg.Home)
	contactStore := store.NewContactFileStore(cfg.Home)

	// High-level services
	identitySvc := identitysvc.New(identityStore, log)
	contactSvc := contactsvc.New(contactStore, log)
	messageSvc := messagesvc.New(identitySvc, contactSvc, log)

	return &Wire{
		Config:   cfg,
		Log:      log,
		Identity: identitySvc,
		Contacts: contactSvc,
		Messages: messageSvc,
	}, nil
}

// NewLogger returns a human-readable zerolog logger writing to w.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
