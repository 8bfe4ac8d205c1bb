package authcore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	authcore "github.com/mygbu/authcore"
	"github.com/mygbu/authcore/config"
	"github.com/mygbu/authcore/domain"
	"github.com/mygbu/authcore/session"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		Env:            "dev",
		Secrets:        config.SecretsConfig{Backend: config.SecretBackendMemory},
		Login:          config.LoginConfig{Attempts: 0, Window: time.Minute},
		Log:            config.LogConfig{Level: "error", Format: "text"},
	}
}

func TestNewAssemblesWorkingCore(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		now := time.Now().UTC()
		user := domain.User{
			ID:        "usr-001",
			UserType:  domain.UserTypeStudent,
			Email:     "asha@gbu.ac.in",
			FirstName: "Asha",
			LastName:  "Verma",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		token := "tok-e2e"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "ok",
			"token":   token,
			"user":    user,
			"student": domain.Student{
				ID:               "stu-001",
				EnrollmentNumber: "GBU2021001",
				User:             user,
				Course:           "B.Tech",
				Branch:           "CSE",
			},
		})
	}))
	defer backend.Close()

	core, err := authcore.New(testConfig(backend.URL))
	require.NoError(t, err)
	defer core.Close()

	err = core.Session.Login(context.Background(), "GBU2021001", "pw", domain.UserTypeStudent)
	require.NoError(t, err)

	st := core.Session.State()
	require.True(t, st.Authenticated)
	require.Equal(t, session.PhaseAuthenticated, st.Phase())
	require.NotNil(t, st.Profile.Student)

	core.Session.Logout(context.Background())
	require.True(t, core.Session.State().Empty())
}

func TestNewVaultBackend(t *testing.T) {
	t.Setenv("AUTHCORE_MASTER_KEY", "unit-test-master-key")

	cfg := testConfig("https://api.gbu.ac.in")
	cfg.Secrets.Backend = config.SecretBackendVault
	cfg.Secrets.VaultFile = filepath.Join(t.TempDir(), "vault.db")

	core, err := authcore.New(cfg)
	require.NoError(t, err)
	require.NoError(t, core.Close())
}

func TestNewRejectsMissingBaseURL(t *testing.T) {
	cfg := testConfig("")
	_, err := authcore.New(cfg)
	require.Error(t, err)
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	cfg := testConfig("https://api.gbu.ac.in")
	cfg.Secrets.Backend = config.SecretBackend("plaintext")
	_, err := authcore.New(cfg)
	require.Error(t, err)
}
