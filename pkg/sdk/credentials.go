package sdk

// Credentials is the opaque token pair issued by the bureau. The access
// token is short-lived and presented on every authorized request; the
// refresh token is longer-lived and used only by the explicit refresh
// operation. Token contents are never inspected client-side.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}

// CredentialStore persists the token pair across process restarts.
// Implementations must treat save and clear as joint operations over both
// tokens and must report absence as (nil, nil), not an error.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
