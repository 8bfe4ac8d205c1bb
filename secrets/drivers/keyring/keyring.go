// Package keyring stores secrets in the operating system's credential
// manager (macOS Keychain, Windows Credential Manager, Secret Service
// on Linux). This is the default backend: the bearer token never
// touches plaintext files or preferences.
package keyring

import (
	"context"
	"errors"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/mygbu/authcore/secrets"
)

// DefaultService is the keychain service name secrets are filed under.
const DefaultService = "in.ac.gbu.mygbu"

type Store struct {
	service string
}

var _ secrets.Store = (*Store)(nil)

// NewStore creates a keyring-backed store. An empty service name falls
// back to DefaultService.
func NewStore(service string) *Store {
	if service == "" {
		service = DefaultService
	}
	return &Store{service: service}
}

// Save upserts value under key. The OS keychain replaces any existing
// entry for the same service/key pair in one call.
func (s *Store) Save(_ context.Context, key, value string) error {
	return gokeyring.Set(s.service, key, value)
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	value, err := gokeyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", secrets.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := gokeyring.Delete(s.service, key); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}
