// Package auth resolves the server address and auth key used to connect.
package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/marckohlbrugge/tempmail-cli/internal/config"
	"github.com/marckohlbrugge/tempmail-cli/internal/keyring"
)

const (
	// KeyringService is the service name used in the system keychain.
	KeyringService = "tm-cli"
	// KeyringUser is the account name in the keychain.
	KeyringUser = "server-key"
)

// ErrNotAuthenticated is returned when no server or key is configured.
var ErrNotAuthenticated = errors.New("not authenticated.\n\n" +
	"Run 'tm auth login' to connect to a server, or set TM_SERVER and TM_KEY.")

// Credentials is what a session needs to connect.
type Credentials struct {
	Server string
	Key    string
}

// CredentialSource looks up credentials. Environment variables win over
// the config file (server) and the keychain (key).
type CredentialSource struct {
	envServer string
	envKey    string
}

// NewCredentialSource captures TM_SERVER and TM_KEY.
func NewCredentialSource() *CredentialSource {
	return &CredentialSource{
		envServer: os.Getenv("TM_SERVER"),
		envKey:    os.Getenv("TM_KEY"),
	}
}

// Server returns the server address, or "" when none is configured.
func (cs *CredentialSource) Server() string {
	if cs.envServer != "" {
		return cs.envServer
	}
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.Server
}

// Key returns the auth key, or "" when none is stored.
func (cs *CredentialSource) Key() string {
	if cs.envKey != "" {
		return cs.envKey
	}
	key, err := keyring.Get(KeyringService, KeyringUser)
	if err != nil {
		return ""
	}
	return key
}

// Get returns both server and key, or ErrNotAuthenticated.
func (cs *CredentialSource) Get() (Credentials, error) {
	creds := Credentials{Server: cs.Server(), Key: cs.Key()}
	if creds.Server == "" || creds.Key == "" {
		return Credentials{}, ErrNotAuthenticated
	}
	return creds, nil
}

// FromEnv reports whether the environment overrides the stored values.
func (cs *CredentialSource) FromEnv() bool {
	return cs.envServer != "" || cs.envKey != ""
}

// IsAuthenticated returns true if credentials are available.
func (cs *CredentialSource) IsAuthenticated() bool {
	_, err := cs.Get()
	return err == nil
}

// Save stores the server address in the config file and the key in the
// keychain.
func Save(creds Credentials) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Server = creds.Server
	if err := config.Save(cfg); err != nil {
		return err
	}
	if err := keyring.Set(KeyringService, KeyringUser, creds.Key); err != nil {
		return fmt.Errorf("failed to store key in keychain: %w", err)
	}
	return nil
}

// Clear forgets the stored server address and key.
func Clear() error {
	if err := keyring.Delete(KeyringService, KeyringUser); err != nil {
		return fmt.Errorf("failed to remove key from keychain: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Server = ""
	return config.Save(cfg)
}
