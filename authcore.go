// Package authcore is the session and identity core for the MyGBU
// mobile applications: login, token persistence, silent session
// recovery and logout against the university backend.
//
// Most embedders construct everything through New and then talk to the
// returned session manager:
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	core, err := authcore.New(cfg)
//	if err != nil { ... }
//	defer core.Close()
//
//	err = core.Session.Login(ctx, "GBU2021001", password, domain.UserTypeStudent)
//
// The individual packages (transport, secrets, session) remain usable
// on their own for embedders that need different wiring.
package authcore

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/mygbu/authcore/config"
	"github.com/mygbu/authcore/pkg/cryptox"
	"github.com/mygbu/authcore/pkg/slogx"
	"github.com/mygbu/authcore/secrets"
	"github.com/mygbu/authcore/secrets/drivers/keyring"
	"github.com/mygbu/authcore/secrets/drivers/memory"
	"github.com/mygbu/authcore/secrets/drivers/vault"
	"github.com/mygbu/authcore/session"
	"github.com/mygbu/authcore/transport"
)

// Version is the library version reported in log output.
const Version = "1.0.0"

// Core bundles the assembled session manager with the resources it
// owns. Close releases the secret store when the backend holds one
// open (the vault driver's database handle).
type Core struct {
	Session *session.Manager

	store  secrets.Store
	closer func() error
}

// Close releases resources held by the credential store.
func (c *Core) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// New assembles the auth core from configuration: structured logger,
// credential store driver, transport client and session manager.
func New(cfg config.Config) (*Core, error) {
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slogx.New(slogx.Config{
		Service: "authcore",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})

	core := &Core{}

	switch cfg.Secrets.Backend {
	case config.SecretBackendKeyring:
		core.store = keyring.NewStore(cfg.Secrets.KeyringService)
	case config.SecretBackendVault:
		if cfg.Secrets.MasterKeyPath != "" {
			cryptox.SetMasterKeyPath(cfg.Secrets.MasterKeyPath)
		}
		store, err := vault.NewStore(cfg.Secrets.VaultFile)
		if err != nil {
			return nil, fmt.Errorf("open vault store: %w", err)
		}
		if err := store.ApplyMigrations(); err != nil {
			store.Close()
			return nil, fmt.Errorf("migrate vault store: %w", err)
		}
		core.store = store
		core.closer = store.Close
	case config.SecretBackendMemory:
		core.store = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown secret backend %q", cfg.Secrets.Backend)
	}

	client := transport.NewClient(cfg.BaseURL, logger)
	client.HTTPClient.Timeout = cfg.RequestTimeout

	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Login.Attempts == 0 {
		opts = append(opts, session.WithLoginLimit(0, 0))
	} else {
		every := rate.Every(cfg.Login.Window / time.Duration(cfg.Login.Attempts))
		opts = append(opts, session.WithLoginLimit(every, cfg.Login.Attempts))
	}

	core.Session = session.NewManager(client, core.store, opts...)
	logger.Info("auth core assembled",
		"backend", cfg.Secrets.Backend,
		"base_url", cfg.BaseURL)
	return core, nil
}
