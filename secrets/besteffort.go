package secrets

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// BestEffort wraps a Store with the policy the session layer relies on:
// Save and Delete swallow driver failures, Get reports absence on any
// failure, and every swallowed error is logged for diagnosis. Writes
// and deletes to the same key are serialized by a per-key lock.
type BestEffort struct {
	store  Store
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewBestEffort wraps store. A nil logger falls back to slog.Default.
func NewBestEffort(store Store, logger *slog.Logger) *BestEffort {
	if logger == nil {
		logger = slog.Default()
	}
	return &BestEffort{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Save stores value under key, best-effort.
func (b *BestEffort) Save(ctx context.Context, key, value string) {
	unlock := b.lockKey(key)
	defer unlock()

	if err := b.store.Save(ctx, key, value); err != nil {
		b.logger.Warn("secret save failed", "key", key, "error", err)
	}
}

// Get returns the value for key and whether it was present. Any driver
// failure reads as absent.
func (b *BestEffort) Get(ctx context.Context, key string) (string, bool) {
	value, err := b.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			b.logger.Warn("secret read failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Delete removes key, best-effort.
func (b *BestEffort) Delete(ctx context.Context, key string) {
	unlock := b.lockKey(key)
	defer unlock()

	if err := b.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		b.logger.Warn("secret delete failed", "key", key, "error", err)
	}
}

func (b *BestEffort) lockKey(key string) func() {
	b.mu.Lock()
	l, ok := b.locks[key]
	if !ok {
		l = &sync.Mutex{}
		b.locks[key] = l
	}
	b.mu.Unlock()

	l.Lock()
	return l.Unlock
}
