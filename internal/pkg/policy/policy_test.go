package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminCaseInsensitive(t *testing.T) {
	for _, role := range []string{"admin", "ADMIN", "Admin", " admin "} {
		assert.True(t, IsAdmin(role), "role %q", role)
	}
	assert.False(t, IsAdmin("manager"))
	assert.False(t, IsAdmin("USER"))
}

func TestCanManageDeals(t *testing.T) {
	assert.True(t, CanManageDeals("ADMIN"))
	assert.True(t, CanManageDeals("manager"))
	assert.True(t, CanManageDeals("Manager"))
	assert.False(t, CanManageDeals("USER"))
	assert.False(t, CanManageDeals("viewer"))
}

func TestCanCreateTasks(t *testing.T) {
	assert.True(t, CanCreateTasks("admin"))
	assert.True(t, CanCreateTasks("MANAGER"))
	assert.False(t, CanCreateTasks("user"))
}

func TestEmptyRoleMatchesNothing(t *testing.T) {
	for _, role := range []string{"", "   "} {
		assert.False(t, IsAdmin(role))
		assert.False(t, CanManageDeals(role))
		assert.False(t, CanCreateTasks(role))
	}
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed("user", "ADMIN", "USER"))
	assert.False(t, RoleAllowed("user"))
	assert.False(t, RoleAllowed("", "ADMIN"))
}
