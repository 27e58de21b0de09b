package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	u := User{Roles: "user,admin"}
	assert.True(t, u.HasRole("user"))
	assert.True(t, u.HasRole("admin"))
	assert.False(t, u.HasRole("root"))

	u = User{Roles: "user"}
	assert.False(t, u.HasRole("admin"))

	// Stray whitespace in the stored set is tolerated
	u = User{Roles: "user, admin"}
	assert.True(t, u.HasRole("admin"))
}
