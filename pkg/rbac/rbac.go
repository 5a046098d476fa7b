// Package rbac maps bureau roles to the navigation entries their users may
// reach. The table is advisory for presentation only: membership of a path
// here gates what the shell renders, while the bureau independently
// re-validates every request's role server-side.
package rbac

import "github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"

// NavEntry is one navigable destination: a menu label, an icon tag for the
// shell, and the route path it dispatches to.
type NavEntry struct {
	Label string
	Tag   string
	Path  string
}

// DefaultLandingPath is where authenticated navigation lands when no
// explicit destination is requested.
const DefaultLandingPath = "/dashboard"

var dashboardEntry = NavEntry{Label: "Dashboard", Tag: "dashboard", Path: DefaultLandingPath}

// capabilityTable is the single place role-conditioned navigation lives.
// Order within a role's list is the menu presentation order.
var capabilityTable = map[sdk.Role][]NavEntry{
	sdk.RoleAdmin: {
		dashboardEntry,
		{Label: "Users", Tag: "people", Path: "/admin/users"},
		{Label: "Banks", Tag: "bank", Path: "/admin/banks"},
		{Label: "Audit Logs", Tag: "settings", Path: "/admin/audit"},
	},
	sdk.RoleBankManager: bankEntries,
	sdk.RoleBankUser:    bankEntries,
	sdk.RoleConsumer: {
		dashboardEntry,
		{Label: "Credit Report", Tag: "report", Path: "/consumer/report"},
		{Label: "Disputes", Tag: "gavel", Path: "/consumer/disputes"},
		{Label: "Consent", Tag: "settings", Path: "/consumer/consent"},
	},
}

var bankEntries = []NavEntry{
	dashboardEntry,
	{Label: "Submit Data", Tag: "data", Path: "/bank/submit-data"},
	{Label: "Credit Inquiry", Tag: "search", Path: "/bank/inquiry"},
	{Label: "Inquiry History", Tag: "report", Path: "/bank/history"},
}

// CapabilitiesFor returns the ordered navigation entries for role. It is
// total: any role outside the table, including RoleUnknown, yields an empty
// slice, failing closed rather than granting default access. The result is
// a copy; callers may reorder or trim it freely.
func CapabilitiesFor(role sdk.Role) []NavEntry {
	entries, ok := capabilityTable[role]
	if !ok {
		return []NavEntry{}
	}
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}

// Allows reports whether role's capability set contains path. Presence is a
// presentation decision, not a security check.
func Allows(role sdk.Role, path string) bool {
	for _, entry := range capabilityTable[role] {
		if entry.Path == path {
			return true
		}
	}
	return false
}
