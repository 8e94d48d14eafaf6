package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ecies256k1/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	v := app.NewViper()
	v.Set(app.KeyHome, home)

	cfg, err := app.LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, home, cfg.Home)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	require.False(t, cfg.Armor)
	require.Empty(t, cfg.Passphrase)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(home, "config.yaml"),
		[]byte("armor: true\nlog_level: warn\n"),
		0o600,
	))
	t.Setenv("ECIES_LOG_LEVEL", "debug")

	v := app.NewViper()
	v.Set(app.KeyHome, home)

	cfg, err := app.LoadConfig(v)
	require.NoError(t, err)
	require.True(t, cfg.Armor)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel, "environment beats config file")
}

func TestLoadConfig_BadLevel(t *testing.T) {
	v := app.NewViper()
	v.Set(app.KeyHome, t.TempDir())
	v.Set(app.KeyLogLevel, "loud")

	_, err := app.LoadConfig(v)
	require.Error(t, err)
}

func TestNewWire_BuildsServices(t *testing.T) {
	home := filepath.Join(t.TempDir(), "state")
	var logs bytes.Buffer

	w, err := app.NewWire(app.Config{Home: home, LogLevel: zerolog.InfoLevel}, &logs)
	require.NoError(t, err)
	require.DirExists(t, home)

	_, fp, err := w.Identity.GenerateIdentity("Correct-Horse-42")
	require.NoError(t, err)
	require.Contains(t, logs.String(), fp.String())
	require.NotContains(t, logs.String(), "Correct-Horse-42")
}
