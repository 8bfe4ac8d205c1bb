// Package secrets defines the credential store contract: opaque
// key-value persistence for the session's bearer token, backed by
// OS-secure storage. Drivers live under drivers/; callers in this
// module go through BestEffort, which applies the swallow-and-log
// policy the session layer expects.
package secrets

import (
	"context"
	"errors"
)

// TokenKey is the logical key the session's bearer token lives under.
const TokenKey = "auth_token"

// ErrNotFound reports an absent key.
var ErrNotFound = errors.New("secrets: not found")

// Store is the driver contract. Save must be an atomic upsert per key:
// no window where neither the old nor the new value is readable.
type Store interface {
	Save(ctx context.Context, key, value string) error

	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
