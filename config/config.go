// Package config loads library configuration from the environment.
//
// Every variable carries the AUTHCORE_ prefix, so an embedding
// application can hold its own namespace alongside. A .env file in the
// working directory is honoured during development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SecretBackend selects the credential store driver.
type SecretBackend string

const (
	// SecretBackendKeyring stores the token in the OS keychain.
	SecretBackendKeyring SecretBackend = "keyring"
	// SecretBackendVault stores the token encrypted in a local
	// SQLite file, for hosts without a keychain service.
	SecretBackendVault SecretBackend = "vault"
	// SecretBackendMemory keeps the token in process memory only.
	// For tests and previews.
	SecretBackendMemory SecretBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for SecretBackend.
func (b *SecretBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "keyring", "vault", "memory":
		*b = SecretBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SecretBackend: %q (valid options: keyring, vault, memory)", v)
	}
}

// SecretsConfig selects and parameterizes the credential store.
type SecretsConfig struct {
	// Backend determines which secrets driver holds the auth token.
	Backend SecretBackend `env:"BACKEND" envDefault:"keyring"`

	// KeyringService is the keychain service name (keyring backend).
	KeyringService string `env:"KEYRING_SERVICE" envDefault:"in.ac.gbu.mygbu"`

	// VaultFile is the SQLite file path (vault backend).
	VaultFile string `env:"VAULT_FILE" envDefault:"mygbu-vault.db"`

	// MasterKeyPath optionally points at a file holding the vault
	// master key material. Empty means key material comes from
	// AUTHCORE_MASTER_KEY or an ephemeral key.
	MasterKeyPath string `env:"MASTER_KEY_PATH"`
}

// LoginConfig tunes the client-side login throttle.
type LoginConfig struct {
	// Attempts is the number of login attempts allowed per Window.
	// Zero disables throttling.
	Attempts int `env:"ATTEMPTS" envDefault:"5"`

	// Window is the period over which Attempts is enforced.
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
}

// LogConfig shapes the structured logger.
type LogConfig struct {
	Level  string `env:"LEVEL"  envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Config is the root configuration for the auth core.
type Config struct {
	// BaseURL is the MyGBU backend origin, e.g. https://api.gbu.ac.in.
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds each round trip to the backend.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Env labels log output (dev enables source locations).
	Env string `env:"ENV" envDefault:"prod"`

	Secrets SecretsConfig `envPrefix:"SECRETS_"`
	Login   LoginConfig   `envPrefix:"LOGIN_"`
	Log     LogConfig     `envPrefix:"LOG_"`
}

// Sanitize applies guardrails to values loaded from the environment.
func (c *Config) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.Login.Window <= 0 {
		c.Login.Window = time.Minute
	}
	if c.Login.Attempts < 0 {
		c.Login.Attempts = 0
	}
	if c.Secrets.KeyringService == "" {
		c.Secrets.KeyringService = "in.ac.gbu.mygbu"
	}
}

// Validate rejects configurations the core cannot run with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("config: AUTHCORE_BASE_URL is required")
	}
	if c.Secrets.Backend == SecretBackendVault && c.Secrets.VaultFile == "" {
		return errors.New("config: AUTHCORE_SECRETS_VAULT_FILE is required for the vault backend")
	}
	return nil
}

// Load reads a .env file when present, then parses AUTHCORE_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "AUTHCORE_"}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
