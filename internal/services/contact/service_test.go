package contact_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/services/contact"
	"ecies256k1/internal/store"
)

func newService(t *testing.T) *contact.Service {
	t.Helper()
	return contact.New(store.NewContactFileStore(t.TempDir()), zerolog.Nop())
}

func TestAddContact_AndResolve(t *testing.T) {
	svc := newService(t)
	_, pub, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)

	c, err := svc.AddContact("bob", pub.String())
	require.NoError(t, err)
	require.Equal(t, pub, c.PublicKey)

	byName, err := svc.Resolve("bob")
	require.NoError(t, err)
	require.Equal(t, pub, byName)

	byHex, err := svc.Resolve("04" + pub.String())
	require.NoError(t, err)
	require.Equal(t, pub, byHex)

	list, err := svc.ListContacts()
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAddContact_Rejects(t *testing.T) {
	svc := newService(t)
	_, pub, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)

	_, err = svc.AddContact("bad name", pub.String())
	require.ErrorIs(t, err, contact.ErrInvalidName)

	_, err = svc.AddContact("carol", "00112233")
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestResolve_Unknown(t *testing.T) {
	svc := newService(t)

	_, err := svc.Resolve("nobody")
	require.ErrorIs(t, err, contact.ErrUnknownContact)
}

func TestRemoveContact(t *testing.T) {
	svc := newService(t)
	_, pub, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)
	_, err = svc.AddContact("dave", pub.String())
	require.NoError(t, err)

	require.NoError(t, svc.RemoveContact("dave"))
	require.ErrorIs(t, svc.RemoveContact("dave"), contact.ErrUnknownContact)
}
