package sdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

func TestAuthenticateSendsPasswordForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		// The bureau's token endpoint is an OAuth2 password form, so the
		// email travels as "username".
		assert.Equal(t, "c@mhcc.example", r.PostFormValue("username"))
		assert.Equal(t, "pw", r.PostFormValue("password"))
		writeData(w, map[string]string{"access_token": "at", "refresh_token": "rt", "token_type": "bearer"})
	}))
	defer srv.Close()

	creds, err := sdk.NewClient(srv.URL).Authenticate(context.Background(), "c@mhcc.example", "pw")
	require.NoError(t, err)
	assert.Equal(t, "at", creds.AccessToken)
	assert.Equal(t, "rt", creds.RefreshToken)
	assert.Equal(t, "bearer", creds.TokenType)
}

func TestAuthenticateRejectionIsInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Incorrect email or password"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := sdk.NewClient(srv.URL).Authenticate(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, sdk.ErrInvalidCredentials, sdk.ErrorKindOf(err))
}

func TestAuthenticateMissingTokenIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"access_token": "at"})
	}))
	defer srv.Close()

	_, err := sdk.NewClient(srv.URL).Authenticate(context.Background(), "a@b.com", "pw")
	require.Error(t, err)
	assert.Equal(t, sdk.ErrMalformedResponse, sdk.ErrorKindOf(err))
}

func TestRegisterRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		writeData(w, map[string]any{
			"id": 12, "email": "new@mhcc.example", "full_name": "New Consumer",
			"role": "CONSUMER", "is_active": true, "is_verified": false,
		})
	}))
	defer srv.Close()

	identity, err := sdk.NewClient(srv.URL).Register(context.Background(), sdk.RegisterInput{
		Email:    "new@mhcc.example",
		Password: "pw",
		FullName: "New Consumer",
		Role:     sdk.RoleConsumer,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, identity.ID)
	assert.Equal(t, sdk.RoleConsumer, identity.Role)
	assert.False(t, identity.IsVerified)
}

func TestRefreshCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)
		writeData(w, map[string]string{"access_token": "at2", "refresh_token": "rt2", "token_type": "bearer"})
	}))
	defer srv.Close()

	creds, err := sdk.NewClient(srv.URL).RefreshCredentials(context.Background(), "rt1")
	require.NoError(t, err)
	assert.Equal(t, "at2", creds.AccessToken)
	assert.Equal(t, "rt2", creds.RefreshToken)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"ADMIN", "BANK_MANAGER", "BANK_USER", "DATA_PROVIDER", "AUDITOR", "CONSUMER"} {
		role, ok := sdk.ParseRole(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, sdk.Role(valid), role)
	}
	for _, invalid := range []string{"", "admin", "ROOT", "BANKMANAGER", " ADMIN"} {
		role, ok := sdk.ParseRole(invalid)
		assert.False(t, ok, invalid)
		assert.Equal(t, sdk.RoleUnknown, role)
	}
}
