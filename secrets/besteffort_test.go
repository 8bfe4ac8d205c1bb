package secrets_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mygbu/authcore/secrets"
	"github.com/mygbu/authcore/secrets/drivers/memory"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Save(context.Context, string, string) error { return errors.New("backend gone") }
func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("backend gone")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("backend gone") }

func TestBestEffortRoundTrip(t *testing.T) {
	t.Parallel()

	be := secrets.NewBestEffort(memory.NewStore(), nil)
	ctx := context.Background()

	_, ok := be.Get(ctx, secrets.TokenKey)
	require.False(t, ok)

	be.Save(ctx, secrets.TokenKey, "tok-1")
	got, ok := be.Get(ctx, secrets.TokenKey)
	require.True(t, ok)
	require.Equal(t, "tok-1", got)

	be.Save(ctx, secrets.TokenKey, "tok-2")
	got, ok = be.Get(ctx, secrets.TokenKey)
	require.True(t, ok)
	require.Equal(t, "tok-2", got)

	be.Delete(ctx, secrets.TokenKey)
	_, ok = be.Get(ctx, secrets.TokenKey)
	require.False(t, ok)
}

func TestBestEffortSwallowsDriverFailures(t *testing.T) {
	t.Parallel()

	be := secrets.NewBestEffort(failingStore{}, nil)
	ctx := context.Background()

	// None of these may panic or surface an error.
	be.Save(ctx, secrets.TokenKey, "tok")
	be.Delete(ctx, secrets.TokenKey)

	_, ok := be.Get(ctx, secrets.TokenKey)
	require.False(t, ok, "failed reads must report absent")
}

func TestBestEffortConcurrentSameKey(t *testing.T) {
	t.Parallel()

	be := secrets.NewBestEffort(memory.NewStore(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			be.Save(ctx, secrets.TokenKey, "tok")
		}()
		go func() {
			defer wg.Done()
			be.Delete(ctx, secrets.TokenKey)
		}()
	}
	wg.Wait()

	// Either state is legal afterwards; the store itself must be intact.
	be.Save(ctx, secrets.TokenKey, "final")
	got, ok := be.Get(ctx, secrets.TokenKey)
	require.True(t, ok)
	require.Equal(t, "final", got)
}
