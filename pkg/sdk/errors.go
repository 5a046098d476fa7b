package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures from the bureau API into the categories the
// rest of the client cares about. The client never retries on its own; kinds
// exist so callers can choose the right recovery UX.
type ErrorKind string

const (
	// ErrInvalidCredentials is returned by Authenticate when the bureau
	// rejects the email/password pair.
	ErrInvalidCredentials ErrorKind = "INVALID_CREDENTIALS"
	// ErrNetwork covers transport and connectivity failures.
	ErrNetwork ErrorKind = "NETWORK"
	// ErrAuthorization means the presented token is invalid, expired or
	// missing the required permission.
	ErrAuthorization ErrorKind = "AUTHORIZATION"
	// ErrServer is any unexpected non-authorization failure from the bureau.
	ErrServer ErrorKind = "SERVER"
	// ErrMalformedResponse means the bureau returned data that cannot be
	// decoded into the expected shape.
	ErrMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
)

// AuthError is the error type surfaced by all SDK operations.
type AuthError struct {
	Kind    ErrorKind
	Message string
	Err     error
	// Status is the HTTP status code when the failure came off the wire,
	// zero otherwise. AUTHORIZATION covers both a rejected token (401) and
	// a permission denial (403); callers that must discard credentials on
	// the former but not the latter consult the status.
	Status int
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func newAuthError(kind ErrorKind, message string, err error) *AuthError {
	return &AuthError{Kind: kind, Message: message, Err: err}
}

// ErrorKindOf extracts the kind from err, or "" when err is not an AuthError.
func ErrorKindOf(err error) ErrorKind {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsKind reports whether err is an AuthError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return ErrorKindOf(err) == kind
}

// IsTokenRejected reports whether err means the bureau refused the access
// token itself (401), as opposed to denying a permission (403). A rejected
// token invalidates the whole session; a permission denial does not.
func IsTokenRejected(err error) bool {
	var ae *AuthError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Kind == ErrAuthorization && ae.Status == http.StatusUnauthorized
}
