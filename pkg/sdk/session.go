package sdk

import (
	"context"
	"sync"
)

// SessionState is the process-wide authentication state. Exactly one exists
// per Session; it is not per-view state.
type SessionState int

const (
	// StateUnresolved is the initial state, before Resolve has run.
	StateUnresolved SessionState = iota
	// StateResolving means the startup identity check is in flight.
	StateResolving
	// StateAuthenticated means a verified identity is held and the store
	// holds a credential pair.
	StateAuthenticated
	// StateUnauthenticated means no identity is held and the store holds
	// no credential pair.
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "invalid"
}

// Session is the single source of truth for the current identity. All
// mutation funnels through Resolve, Login and Logout; everything else only
// observes. The mutex exists for safety under concurrent observation: in
// normal operation each write is triggered by a discrete user or startup
// event and writers never overlap.
type Session struct {
	client *Client
	store  CredentialStore

	mu       sync.Mutex
	state    SessionState
	identity *Identity
	resolved bool
}

// NewSession creates a session in the Unresolved state. Callers are expected
// to Resolve exactly once at startup before making navigation decisions.
func NewSession(client *Client, store CredentialStore) *Session {
	return &Session{
		client: client,
		store:  store,
		state:  StateUnresolved,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentIdentity returns the verified identity, or nil whenever the state
// is not Authenticated.
func (s *Session) CurrentIdentity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated {
		return nil
	}
	return s.identity
}

// IsLoading reports whether the session has not yet settled into an
// authenticated or unauthenticated state.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateUnresolved || s.state == StateResolving
}

// Resolve turns stored credentials into a verified identity, or clears them.
// It runs at most once per session; later calls are no-ops. Failures are
// absorbed: a bad or unverifiable token degrades to Unauthenticated with the
// store wiped, never to an error: "please log in" is the recovery UX. No
// retries are attempted; a transient blip at startup means re-authenticating
// explicitly rather than an indefinite loading state.
func (s *Session) Resolve(ctx context.Context) {
	s.mu.Lock()
	if s.resolved {
		s.mu.Unlock()
		return
	}
	s.resolved = true
	s.state = StateResolving
	s.mu.Unlock()

	creds, err := s.store.LoadCredentials()
	if err != nil || creds == nil || creds.AccessToken == "" {
		// A partial or unreadable pair is self-correcting: treat it as no
		// session and make sure nothing is left behind.
		if creds != nil || err != nil {
			_ = s.store.DeleteCredentials()
		}
		s.settle(StateUnauthenticated, nil)
		return
	}

	identity, err := s.client.FetchCurrentIdentity(ctx, creds.AccessToken)
	if err != nil {
		_ = s.store.DeleteCredentials()
		s.settle(StateUnauthenticated, nil)
		return
	}
	s.settle(StateAuthenticated, identity)
}

// Login performs the two round trips of an explicit sign-in: credential
// exchange, then identity fetch with the new access token. The pair is
// persisted only after the identity is verified, so a failure at any point
// leaves both the state and the store exactly as they were. All errors are
// surfaced to the caller for display; none are retried here.
func (s *Session) Login(ctx context.Context, email, password string) (*Identity, error) {
	creds, err := s.client.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	identity, err := s.client.FetchCurrentIdentity(ctx, creds.AccessToken)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveCredentials(creds); err != nil {
		return nil, newAuthError(ErrServer, "cannot persist credentials", err)
	}

	s.settle(StateAuthenticated, identity)
	return identity, nil
}

// Logout clears the stored pair and drops the identity. It is callable from
// any state, idempotent, and never fails: a store clear error is dropped
// because an absent credential file is already the desired end state.
func (s *Session) Logout() {
	_ = s.store.DeleteCredentials()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved = true
	s.state = StateUnauthenticated
	s.identity = nil
}

func (s *Session) settle(state SessionState, identity *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved = true
	s.state = state
	s.identity = identity
}
