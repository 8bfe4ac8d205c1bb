package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/crypto/argon2"
)

var (
	masterKeyOnce sync.Once
	masterKey     []byte
	masterKeyPath string = "" // Can be set via SetMasterKeyPath before first use
)

// vaultSalt is the application-scoped argon2 salt for stretching master
// key material. The key material itself must stay secret; the salt only
// domain-separates this vault from other argon2 uses.
var vaultSalt = []byte("authcore.vault.v1")

// SetMasterKeyPath configures where to load the master sealing key
// from. Call it before the first Seal/Open.
func SetMasterKeyPath(path string) {
	masterKeyPath = path
}

// loadMasterKey resolves 32 bytes of AES-256 key material from either:
// 1. The file set via SetMasterKeyPath
// 2. The AUTHCORE_MASTER_KEY environment variable
// 3. An ephemeral random key (development only; sealed values do not
//    survive a restart)
func loadMasterKey() ([]byte, error) {
	var keyMaterial []byte

	switch {
	case masterKeyPath != "":
		data, err := os.ReadFile(masterKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read master key file: %w", err)
		}
		keyMaterial = data
	case os.Getenv("AUTHCORE_MASTER_KEY") != "":
		keyMaterial = []byte(os.Getenv("AUTHCORE_MASTER_KEY"))
	default:
		keyMaterial = make([]byte, 32)
		if _, err := rand.Read(keyMaterial); err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral master key: %w", err)
		}
	}

	// Stretch whatever material we got (often a passphrase) into a
	// uniform 32-byte key.
	return argon2.IDKey(keyMaterial, vaultSalt, 1, 64*1024, 4, 32), nil
}

func getMasterKey() ([]byte, error) {
	var err error
	masterKeyOnce.Do(func() {
		masterKey, err = loadMasterKey()
	})
	if err != nil {
		return nil, err
	}
	if masterKey == nil {
		return nil, fmt.Errorf("master key unavailable")
	}
	return masterKey, nil
}

// Seal encrypts plaintext using AES-256-GCM under the master key.
// Output format: [12-byte nonce][ciphertext][16-byte auth tag].
func Seal(plaintext []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal, verifying the auth tag.
func Open(sealed []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

func newGCM() (cipher.AEAD, error) {
	key, err := getMasterKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

// ResetMasterKeyForTesting resets the master key singleton. Tests only.
func ResetMasterKeyForTesting() {
	masterKeyOnce = sync.Once{}
	masterKey = nil
}
