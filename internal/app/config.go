package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. ECIES_HOME.
const EnvPrefix = "ECIES"

// Config keys shared by viper, flags and environment variables.
const (
	KeyHome       = "home"
	KeyLogLevel   = "log_level"
	KeyArmor      = "armor"
	KeyPassphrase = "passphrase"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string        // state directory, e.g. $HOME/.ecies256k1
	LogLevel   zerolog.Level // minimum level written to stderr
	Armor      bool          // base64-armor sealed output by default
	Passphrase string        // optional; prompted for when empty
}

// NewViper returns a viper instance with defaults and environment binding set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, zerolog.InfoLevel.String())
	v.SetDefault(KeyArmor, false)
	return v
}

// LoadConfig resolves the home directory, merges <home>/config.yaml when it
// exists, and decodes the result.
func LoadConfig(v *viper.Viper) (Config, error) {
	home := v.GetString(KeyHome)
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".ecies256k1")
	}

	v.SetConfigFile(filepath.Join(home, "config.yaml"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	level, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	return Config{
		Home:       home,
		LogLevel:   level,
		Armor:      v.GetBool(KeyArmor),
		Passphrase: v.GetString(KeyPassphrase),
	}, nil
}
