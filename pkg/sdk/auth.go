package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// tokenPayload is the bureau token endpoint's response data.
type tokenPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Authenticate exchanges an email/password pair for credentials. The bureau
// exposes an OAuth2 password form, so the email travels as "username". A 401
// or 403 here means the pair was rejected, not that a token expired.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*Credentials, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var payload tokenPayload
	if err := c.doForm(ctx, apiPrefix+"/auth/login", form, &payload); err != nil {
		if IsKind(err, ErrAuthorization) {
			return nil, newAuthError(ErrInvalidCredentials, "incorrect email or password", err)
		}
		return nil, err
	}
	if payload.AccessToken == "" || payload.RefreshToken == "" {
		return nil, newAuthError(ErrMalformedResponse, "token response missing a token", nil)
	}
	return &Credentials{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		TokenType:    payload.TokenType,
	}, nil
}

// FetchCurrentIdentity resolves an access token into the verified identity
// it belongs to. This is the only way an Identity enters the client: the
// token exchange response is never trusted to describe the user.
func (c *Client) FetchCurrentIdentity(ctx context.Context, accessToken string) (*Identity, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, apiPrefix+"/auth/me", accessToken, nil, &raw); err != nil {
		return nil, err
	}
	return identityFromWire(raw)
}

// RegisterInput describes a new bureau account.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	BankID   *int   `json:"bank_id,omitempty"`
}

// Register creates a new account. Registration does not authenticate; the
// bureau requires email verification before first login counts for much.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*Identity, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, apiPrefix+"/auth/register", "", input, &raw); err != nil {
		return nil, err
	}
	return identityFromWire(raw)
}

// RefreshCredentials trades a refresh token for a fresh pair. The session
// never calls this automatically; it backs the explicit `auth refresh`
// command only.
func (c *Client) RefreshCredentials(ctx context.Context, refreshToken string) (*Credentials, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var payload tokenPayload
	if err := c.doJSON(ctx, http.MethodPost, apiPrefix+"/auth/refresh", "", body, &payload); err != nil {
		return nil, err
	}
	if payload.AccessToken == "" || payload.RefreshToken == "" {
		return nil, newAuthError(ErrMalformedResponse, "token response missing a token", nil)
	}
	return &Credentials{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		TokenType:    payload.TokenType,
	}, nil
}
