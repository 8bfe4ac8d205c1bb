// Package vault is a fallback secrets driver for hosts without an OS
// keychain: a single-table SQLite file whose values are sealed with
// AES-256-GCM under the module master key before they touch disk. It
// holds exactly the secrets the session layer owns, nothing else.
package vault

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mygbu/authcore/pkg/cryptox"
	"github.com/mygbu/authcore/secrets"
)

type Store struct {
	db *sql.DB
}

var _ secrets.Store = (*Store)(nil)

// NewStore opens (or creates) the vault file at dsn, e.g.
// "file:authcore.db?_busy_timeout=5000&_journal_mode=WAL".
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the vault file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save seals value and upserts it in a single statement, so there is no
// window where the key reads as absent during an overwrite.
func (s *Store) Save(ctx context.Context, key, value string) error {
	sealed, err := cryptox.Seal([]byte(value))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vault_secrets (key, sealed_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			sealed_value = excluded.sealed_value,
			updated_at   = excluded.updated_at
	`, key, sealed, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT sealed_value FROM vault_secrets WHERE key = ?`, key,
	).Scan(&sealed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", secrets.ErrNotFound
		}
		return "", err
	}

	plain, err := cryptox.Open(sealed)
	if err != nil {
		// Undecryptable rows (rotated master key, corruption) read as
		// absent rather than surfacing garbage.
		return "", secrets.ErrNotFound
	}
	return string(plain), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM vault_secrets WHERE key = ?`, key)
	return err
}
