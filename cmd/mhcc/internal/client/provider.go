package client

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/auth"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

// Provider yields the credential store, the process-wide session, and
// authenticated SDK clients, each constructed at most once.
type Provider struct {
	serverURL string
	logger    zerolog.Logger

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	sessionOnce sync.Once
	session     *sdk.Session
	sessionErr  error

	apiOnce sync.Once
	api     *sdk.Client
	apiErr  error
}

// NewProvider constructs a Provider bound to the given bureau server URL.
func NewProvider(serverURL string, logger zerolog.Logger) *Provider {
	return &Provider{serverURL: serverURL, logger: logger}
}

// Store returns the file-backed credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		p.store, p.storeErr = auth.NewFileStore()
	})
	return p.store, p.storeErr
}

// Client returns an anonymous SDK client. Auth operations carry their token
// explicitly, so this client serves login, register, refresh and the
// session's identity fetches.
func (p *Provider) Client() *sdk.Client {
	return sdk.NewClient(p.serverURL, sdk.WithLogger(p.logger))
}

// Session returns the process-wide session, created on first use in the
// Unresolved state. Commands that gate on authentication call Resolve
// themselves (idempotent); logout works without resolving at all.
func (p *Provider) Session() (*sdk.Session, error) {
	p.sessionOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.sessionErr = err
			return
		}
		p.session = sdk.NewSession(p.Client(), store)
	})
	return p.session, p.sessionErr
}

// APIClient returns an SDK client whose HTTP transport injects the stored
// access token on every request. Resource calls go through this client; the
// bureau still re-validates the token and role server-side. The oauth2
// transport is built on context.Background because the cached client outlives
// any one command; per-request contexts flow through the SDK call sites.
func (p *Provider) APIClient() (*sdk.Client, error) {
	p.apiOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.apiErr = err
			return
		}
		creds, err := store.LoadCredentials()
		if err != nil {
			p.apiErr = err
			return
		}
		if creds == nil {
			p.apiErr = errors.New("no credentials found; please run `mhcc auth login`")
			return
		}

		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: creds.AccessToken,
			TokenType:   "Bearer",
		})
		httpClient := oauth2.NewClient(context.Background(), source)

		p.api = sdk.NewClient(p.serverURL,
			sdk.WithHTTPClient(httpClient),
			sdk.WithLogger(p.logger),
		)
	})
	return p.api, p.apiErr
}
