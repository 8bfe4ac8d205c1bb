package vault_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mygbu/authcore/pkg/cryptox"
	"github.com/mygbu/authcore/secrets"
	"github.com/mygbu/authcore/secrets/drivers/vault"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *vault.Store {
	t.Helper()

	t.Setenv("AUTHCORE_MASTER_KEY", "vault-test-master-key")
	cryptox.ResetMasterKeyForTesting()
	t.Cleanup(cryptox.ResetMasterKeyForTesting)

	dsn := "file:" + filepath.Join(t.TempDir(), "vault.db")
	store, err := vault.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.ApplyMigrations())
	return store
}

func TestVaultRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, secrets.TokenKey, "tok-abc"))

	got, err := store.Get(ctx, secrets.TokenKey)
	require.NoError(t, err)
	require.Equal(t, "tok-abc", got)
}

func TestVaultOverwriteIsUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, secrets.TokenKey, "old"))
	require.NoError(t, store.Save(ctx, secrets.TokenKey, "new"))

	got, err := store.Get(ctx, secrets.TokenKey)
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestVaultAbsentKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, secrets.ErrNotFound)
}

func TestVaultDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, secrets.TokenKey, "tok"))
	require.NoError(t, store.Delete(ctx, secrets.TokenKey))

	_, err := store.Get(ctx, secrets.TokenKey)
	require.ErrorIs(t, err, secrets.ErrNotFound)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(ctx, secrets.TokenKey))
}

func TestVaultMigrationsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.ApplyMigrations())
	require.NoError(t, store.Ping(context.Background()))
}
