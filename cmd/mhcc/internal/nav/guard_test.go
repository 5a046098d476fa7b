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

func fakeBureau(t *testing.T, role string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id": 1, "email": "u@mhcc.example", "full_name": "U",
				"role": role, "is_active": true, "is_verified": true,
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// unresolvedSession is still loading: no Resolve has run.
func unresolvedSession(t *testing.T) *sdk.Session {
	t.Helper()
	srv := fakeBureau(t, "ADMIN")
	store := auth.NewFileStoreAt(filepath.Join(t.TempDir(), "credentials.json"))
	return sdk.NewSession(sdk.NewClient(srv.URL), store)
}

func unauthenticatedSession(t *testing.T) *sdk.Session {
	t.Helper()
	session := unresolvedSession(t)
	session.Resolve(context.Background())
	return session
}

func authenticatedSession(t *testing.T, role string) *sdk.Session {
	t.Helper()
	srv := fakeBureau(t, role)
	store := auth.NewFileStoreAt(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, store.SaveCredentials(&sdk.Credentials{AccessToken: "tok", RefreshToken: "rt"}))
	session := sdk.NewSession(sdk.NewClient(srv.URL), store)
	session.Resolve(context.Background())
	require.NotNil(t, session.CurrentIdentity())
	return session
}

func TestGuardPendingWhileLoading(t *testing.T) {
	session := unresolvedSession(t)

	// No redirect decision may be made during startup resolution, whatever
	// the route.
	assert.Equal(t, nav.DecisionPending, nav.Evaluate(session, "/dashboard"))
	assert.Equal(t, nav.DecisionPending, nav.Evaluate(session, nav.LoginPath))
	assert.Equal(t, nav.DecisionPending, nav.Evaluate(session, "/nonsense"))
}

func TestGuardUnauthenticated(t *testing.T) {
	session := unauthenticatedSession(t)

	for _, path := range []string{"/dashboard", "/admin/users", "/bank/inquiry", "/consumer/report"} {
		assert.Equal(t, nav.DecisionRedirectLogin, nav.Evaluate(session, path), path)
	}
	assert.Equal(t, nav.DecisionRender, nav.Evaluate(session, nav.LoginPath))
	assert.Equal(t, nav.DecisionRender, nav.Evaluate(session, nav.RegisterPath))

	// Unknown paths fall through to the protected landing route.
	assert.Equal(t, nav.DecisionRedirectLogin, nav.Evaluate(session, "/nonsense"))
}

func TestGuardAuthenticated(t *testing.T) {
	session := authenticatedSession(t, "ADMIN")

	for _, path := range []string{"/dashboard", "/admin/users", "/admin/banks", "/admin/audit"} {
		assert.Equal(t, nav.DecisionRender, nav.Evaluate(session, path), path)
	}
	assert.Equal(t, nav.DecisionRedirectHome, nav.Evaluate(session, nav.LoginPath))
	assert.Equal(t, nav.DecisionRedirectHome, nav.Evaluate(session, nav.RegisterPath))

	// Unknown paths land on the dashboard, which renders.
	assert.Equal(t, nav.DecisionRender, nav.Evaluate(session, "/nonsense"))
}

func TestGuardDoesNotGateByCapability(t *testing.T) {
	// Membership of the capability table is presentation-only; the guard
	// gates on authentication, the bureau enforces the rest.
	session := authenticatedSession(t, "CONSUMER")
	assert.Equal(t, nav.DecisionRender, nav.Evaluate(session, "/admin/users"))
}

func TestKnownPath(t *testing.T) {
	assert.True(t, nav.KnownPath("/dashboard"))
	assert.True(t, nav.KnownPath(nav.LoginPath))
	assert.True(t, nav.KnownPath("/bank/history"))
	assert.False(t, nav.KnownPath("/nope"))
}
