package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPassphrase = "Correct-Horse-42"

func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(bytes.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_SealOpenRoundTrip(t *testing.T) {
	home := t.TempDir()
	common := []string{"--home", home, "-p", testPassphrase}

	out, err := run(t, nil, append([]string{"init"}, common...)...)
	require.NoError(t, err)
	require.Contains(t, out, "Fingerprint:")

	_, err = run(t, nil, append([]string{"init"}, common...)...)
	require.Error(t, err, "second init without --force must refuse")

	pub, err := run(t, nil, "pubkey", "--home", home)
	require.NoError(t, err)
	pub = strings.TrimSpace(pub)
	require.Len(t, pub, 128)

	_, err = run(t, nil, "contact", "add", "me", pub, "--home", home)
	require.NoError(t, err)

	list, err := run(t, nil, "contact", "ls", "--home", home)
	require.NoError(t, err)
	require.Contains(t, list, "me")

	for _, armor := range []bool{false, true} {
		args := []string{"seal", "me", "--home", home, "--mac-data", "ctx"}
		if armor {
			args = append(args, "--armor")
		}
		sealed, err := run(t, []byte("top secret"), args...)
		require.NoError(t, err)

		opened, err := run(t, []byte(sealed), append([]string{"open", "--mac-data", "ctx"}, common...)...)
		require.NoError(t, err, "armor=%v", armor)
		require.Equal(t, "top secret", opened)

		_, err = run(t, []byte(sealed), append([]string{"open", "--mac-data", "other"}, common...)...)
		require.Error(t, err)
	}
}

func TestCLI_ContactRejectsBadKey(t *testing.T) {
	_, err := run(t, nil, "contact", "add", "bob", "1234", "--home", t.TempDir())
	require.Error(t, err)
}
