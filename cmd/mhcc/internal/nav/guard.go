package nav

import (
	"github.com/Daddy-Tine/MHCreditCheck/pkg/rbac"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

// Decision is the outcome of guarding one navigation attempt.
type Decision int

const (
	// DecisionPending means the session is still resolving; render a
	// neutral indicator and decide nothing yet. This prevents a flash
	// redirect to login during startup resolution.
	DecisionPending Decision = iota
	// DecisionRender means the requested route may be shown.
	DecisionRender
	// DecisionRedirectLogin sends an unauthenticated user to the login
	// entry point. The originally requested path is discarded; there is no
	// return-URL preservation.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an already-authenticated user away from
	// login/register to the default landing route.
	DecisionRedirectHome
)

const (
	LoginPath    = "/login"
	RegisterPath = "/register"
)

// publicPaths are the routes reachable without an identity. Everything else
// declared by the capability table requires authentication, and unknown
// paths fall through to the default landing route.
var publicPaths = map[string]bool{
	LoginPath:    true,
	RegisterPath: true,
}

// knownPaths is the full route registry: the public entry points plus every
// path any role's capability list can produce.
var knownPaths = func() map[string]bool {
	paths := map[string]bool{
		LoginPath:               true,
		RegisterPath:            true,
		rbac.DefaultLandingPath: true,
	}
	for _, role := range []sdk.Role{sdk.RoleAdmin, sdk.RoleBankManager, sdk.RoleBankUser, sdk.RoleDataProvider, sdk.RoleAuditor, sdk.RoleConsumer} {
		for _, entry := range rbac.CapabilitiesFor(role) {
			paths[entry.Path] = true
		}
	}
	return paths
}()

// KnownPath reports whether path is in the route registry.
func KnownPath(path string) bool {
	return knownPaths[path]
}

// Evaluate makes the render/redirect decision for one navigation attempt.
// It is a pure function of the current session state and the requested path,
// evaluated independently on every attempt: there is no guard state.
func Evaluate(session *sdk.Session, path string) Decision {
	if session.IsLoading() {
		return DecisionPending
	}

	if !knownPaths[path] {
		// The original catch-all: unknown routes land on the dashboard,
		// which then gets its own guard pass.
		path = rbac.DefaultLandingPath
	}

	identity := session.CurrentIdentity()
	if publicPaths[path] {
		if identity != nil {
			return DecisionRedirectHome
		}
		return DecisionRender
	}

	if identity == nil {
		return DecisionRedirectLogin
	}
	return DecisionRender
}
