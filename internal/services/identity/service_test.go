package identity_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ecies256k1/internal/crypto"
	"ecies256k1/internal/domain"
	"ecies256k1/internal/services/identity"
	"ecies256k1/internal/store"
)

const strongPassphrase = "Correct-Horse-42"

func TestGenerateIdentity_WeakPassphrase(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()), zerolog.Nop())

	for _, p := range []string{"", "short1!A", "alllowercase-123", "NoDigitsHere!!", "NoSymbols12345"} {
		_, _, err := svc.GenerateIdentity(p)
		require.ErrorIs(t, err, identity.ErrWeakPassphrase, p)
	}
}

func TestGenerateIdentity_LoadAndFingerprint(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()), zerolog.Nop())

	id, fp, err := svc.GenerateIdentity(strongPassphrase)
	require.NoError(t, err)
	require.Equal(t, crypto.Fingerprint(id.Public), fp)

	derived, err := crypto.PublicFromPrivate(&id.Private)
	require.NoError(t, err)
	require.Equal(t, id.Public, derived)

	loaded, err := svc.LoadIdentity(strongPassphrase)
	require.NoError(t, err)
	require.Equal(t, id, loaded)

	pub, err := svc.PublicKey()
	require.NoError(t, err)
	require.Equal(t, id.Public, pub)

	got, err := svc.FingerprintIdentity()
	require.NoError(t, err)
	require.Equal(t, fp, got)
}

func TestPublicKey_NoIdentity(t *testing.T) {
	svc := identity.New(store.NewIdentityFileStore(t.TempDir()), zerolog.Nop())

	_, err := svc.PublicKey()
	require.ErrorIs(t, err, store.ErrNoIdentity)
}

func TestLoadIdentity_DetectsMismatchedPair(t *testing.T) {
	home := t.TempDir()
	ids := store.NewIdentityFileStore(home)

	priv, _, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)
	_, other, err := crypto.GenerateSecp256k1()
	require.NoError(t, err)
	require.NoError(t, ids.SaveIdentity(strongPassphrase, domain.Identity{Public: other, Private: priv}))

	_, err = identity.New(ids, zerolog.Nop()).LoadIdentity(strongPassphrase)
	require.ErrorIs(t, err, identity.ErrIdentityMismatch)
}
