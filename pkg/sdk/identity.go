package sdk

import "encoding/json"

// Role is the closed set of bureau roles. Role strings coming off the wire
// are validated at the decode boundary; anything outside the set becomes
// RoleUnknown, which maps to an empty capability set downstream rather than
// an error.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleBankManager  Role = "BANK_MANAGER"
	RoleBankUser     Role = "BANK_USER"
	RoleDataProvider Role = "DATA_PROVIDER"
	RoleAuditor      Role = "AUDITOR"
	RoleConsumer     Role = "CONSUMER"

	// RoleUnknown is the fail-closed value for unrecognized role strings.
	RoleUnknown Role = ""
)

// ParseRole validates s against the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleBankManager, RoleBankUser, RoleDataProvider, RoleAuditor, RoleConsumer:
		return Role(s), true
	}
	return RoleUnknown, false
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "UNKNOWN"
	}
	return string(r)
}

// Identity is the authenticated user's verified profile. It is immutable for
// the lifetime of a session: replaced wholesale on re-login, never partially
// mutated.
type Identity struct {
	ID         int
	Email      string
	FullName   string
	Role       Role
	BankID     *int
	IsActive   bool
	IsVerified bool
}

// userPayload is the bureau's wire representation of a user.
type userPayload struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	BankID     *int   `json:"bank_id"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

// identityFromWire decodes a user payload, validating the role string into
// the closed enum. A missing id or email is malformed; an unrecognized role
// is not.
func identityFromWire(data json.RawMessage) (*Identity, error) {
	var p userPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, newAuthError(ErrMalformedResponse, "cannot decode user payload", err)
	}
	if p.ID < 1 || p.Email == "" {
		return nil, newAuthError(ErrMalformedResponse, "user payload missing id or email", nil)
	}
	role, _ := ParseRole(p.Role)
	return &Identity{
		ID:         p.ID,
		Email:      p.Email,
		FullName:   p.FullName,
		Role:       role,
		BankID:     p.BankID,
		IsActive:   p.IsActive,
		IsVerified: p.IsVerified,
	}, nil
}
