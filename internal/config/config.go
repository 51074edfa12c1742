// Package config persists the CLI's configuration, currently a single Up API
// token, in a user-scoped TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// KeyAPIToken is the configuration key holding the bearer token.
const KeyAPIToken = "api_token"

// EnvToken overrides the stored token when set, so CI and one-off use need no
// config file.
const EnvToken = "UP_TOKEN"

const (
	appDirName     = "upctl"
	configFileName = "config.toml"
)

// Store reads and writes the persisted configuration. It is not safe for
// concurrent invocations writing the same file; the CLI is single-process so
// no locking is done.
type Store struct {
	v    *viper.Viper
	path string
}

// Load opens the config store at the default user-scoped location. A missing
// file yields an empty store; an unreadable or malformed file is an error.
func Load() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return LoadFrom(filepath.Join(dir, appDirName, configFileName))
}

// LoadFrom opens the config store at an explicit path, mainly for tests.
func LoadFrom(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault(KeyAPIToken, "")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return &Store{v: v, path: path}, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored value for key, or the empty string when unset.
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Set stores a value and writes the file.
func (s *Store) Set(key, value string) error {
	s.v.Set(key, value)
	return s.write()
}

// All returns every stored key and value.
func (s *Store) All() map[string]any {
	return s.v.AllSettings()
}

// Clear removes all stored configuration and writes the now-empty file.
func (s *Store) Clear() error {
	fresh := viper.New()
	fresh.SetConfigFile(s.path)
	fresh.SetConfigType("toml")
	fresh.SetDefault(KeyAPIToken, "")
	s.v = fresh
	return s.write()
}

// Token returns the effective API token: the UP_TOKEN environment variable
// when set, otherwise the stored value.
func (s *Store) Token() string {
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	return s.Get(KeyAPIToken)
}

// IsConfigured reports whether a non-empty token is available.
func (s *Store) IsConfigured() bool {
	return s.Token() != ""
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}
	// The file holds a secret, keep it private to the user.
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("failed to restrict config file permissions: %w", err)
	}
	return nil
}
