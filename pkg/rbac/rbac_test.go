package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daddy-Tine/MHCreditCheck/pkg/rbac"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

func TestAdminCapabilitiesExactOrder(t *testing.T) {
	entries := rbac.CapabilitiesFor(sdk.RoleAdmin)
	require.Len(t, entries, 4)

	labels := make([]string, 0, len(entries))
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Label)
		paths = append(paths, entry.Path)
	}
	assert.Equal(t, []string{"Dashboard", "Users", "Banks", "Audit Logs"}, labels)
	assert.Equal(t, []string{"/dashboard", "/admin/users", "/admin/banks", "/admin/audit"}, paths)
}

func TestBankRolesShareCapabilities(t *testing.T) {
	manager := rbac.CapabilitiesFor(sdk.RoleBankManager)
	user := rbac.CapabilitiesFor(sdk.RoleBankUser)
	assert.Equal(t, manager, user)

	require.Len(t, manager, 4)
	assert.Equal(t, "Dashboard", manager[0].Label)
	assert.Equal(t, "/bank/submit-data", manager[1].Path)
	assert.Equal(t, "/bank/inquiry", manager[2].Path)
	assert.Equal(t, "/bank/history", manager[3].Path)
}

func TestConsumerCapabilities(t *testing.T) {
	entries := rbac.CapabilitiesFor(sdk.RoleConsumer)
	require.Len(t, entries, 4)
	assert.Equal(t, "/consumer/report", entries[1].Path)
	assert.Equal(t, "/consumer/disputes", entries[2].Path)
	assert.Equal(t, "/consumer/consent", entries[3].Path)
}

func TestUnmappedRolesFailClosed(t *testing.T) {
	for _, role := range []sdk.Role{
		sdk.RoleDataProvider,
		sdk.RoleAuditor,
		sdk.RoleUnknown,
		sdk.Role("SUPERUSER"),
		sdk.Role("admin"),
	} {
		entries := rbac.CapabilitiesFor(role)
		assert.NotNil(t, entries, "must return an empty slice, not nil semantics")
		assert.Empty(t, entries, string(role))
	}
}

func TestCapabilitiesReturnsACopy(t *testing.T) {
	first := rbac.CapabilitiesFor(sdk.RoleAdmin)
	first[0].Label = "Tampered"

	second := rbac.CapabilitiesFor(sdk.RoleAdmin)
	assert.Equal(t, "Dashboard", second[0].Label)
}

func TestAllows(t *testing.T) {
	assert.True(t, rbac.Allows(sdk.RoleAdmin, "/admin/users"))
	assert.False(t, rbac.Allows(sdk.RoleConsumer, "/admin/users"))
	assert.False(t, rbac.Allows(sdk.RoleUnknown, "/dashboard"))
	assert.True(t, rbac.Allows(sdk.RoleConsumer, "/consumer/report"))
}
