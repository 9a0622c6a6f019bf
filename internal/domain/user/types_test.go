//go:build unit

package user_test

import (
	"testing"

	"bargain-market/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "buyer", input: "buyer", want: user.RoleBuyer},
		{name: "seller", input: "seller", want: user.RoleSeller},
		{name: "admin", input: "admin", want: user.RoleAdmin},
		{name: "unknown role", input: "operator", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}

	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.False(t, user.RoleSeller.IsAdmin())
}
