package nav_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/auth"
	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/nav"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

// expiringBureau authenticates /auth/me but answers every resource request
// with the given status, the way the real bureau does once a token has
// expired (401) or a role lacks a permission (403).
func expiringBureau(t *testing.T, resourceStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id": 1, "email": "u@mhcc.example", "full_name": "U",
				"role": "ADMIN", "is_active": true, "is_verified": true,
			},
		})
	})
	mux.HandleFunc("GET /api/v1/users/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Could not validate credentials"}`, resourceStatus)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func shellAgainst(t *testing.T, srv *httptest.Server) (*nav.Shell, *sdk.Session, sdk.CredentialStore) {
	t.Helper()
	store := auth.NewFileStoreAt(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, store.SaveCredentials(&sdk.Credentials{AccessToken: "tok", RefreshToken: "rt"}))
	session := sdk.NewSession(sdk.NewClient(srv.URL), store)
	session.Resolve(context.Background())
	require.NotNil(t, session.CurrentIdentity())

	shell := nav.NewShell(session, func() (*sdk.Client, error) {
		return sdk.NewClient(srv.URL), nil
	})
	shell.NonInteractive = true
	return shell, session, store
}

func TestOpenSignsOutWhenTokenRejected(t *testing.T) {
	srv := expiringBureau(t, http.StatusUnauthorized)
	shell, session, store := shellAgainst(t, srv)

	// The bureau no longer accepts the token: the pair is discarded and the
	// session drops back to unauthenticated instead of looping on errors.
	require.NoError(t, shell.Open(context.Background(), "/admin/users"))

	assert.Equal(t, sdk.StateUnauthenticated, session.State())
	assert.Nil(t, session.CurrentIdentity())

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestOpenKeepsSessionOnPermissionDenied(t *testing.T) {
	srv := expiringBureau(t, http.StatusForbidden)
	shell, session, store := shellAgainst(t, srv)

	// A 403 means the token is fine but the role is not: the one view fails
	// and the session survives.
	err := shell.Open(context.Background(), "/admin/users")
	require.Error(t, err)
	assert.Equal(t, sdk.ErrAuthorization, sdk.ErrorKindOf(err))

	assert.Equal(t, sdk.StateAuthenticated, session.State())
	require.NotNil(t, session.CurrentIdentity())

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "tok", creds.AccessToken)
}
