//go:build unit

package user_test

import (
	"testing"

	"proposal-service/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "sales@example.com", want: "sales@example.com"},
		{name: "surrounding whitespace trimmed", input: "  sales@example.com  ", want: "sales@example.com"},
		{name: "plus addressing", input: "sales+tag@example.com", want: "sales+tag@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "sales@", errIs: user.ErrInvalidEmail},
		{name: "missing local part", input: "@example.com", errIs: user.ErrInvalidEmail},
		{name: "no tld", input: "sales@example", errIs: user.ErrInvalidEmail},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		input string
		want  user.Role
		errIs error
	}{
		{input: "sales", want: user.RoleSales},
		{input: "admin", want: user.RoleAdmin},
		{input: "viewer", errIs: user.ErrInvalidRole},
		{input: "", errIs: user.ErrInvalidRole},
	}
	for _, c := range cases {
		t.Run("role "+c.input, func(t *testing.T) {
			role, err := user.NewRole(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, role)
		})
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("sales@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "Test Sales", "hash", user.RoleSales)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())

	u.Deactivate()
	assert.False(t, u.IsActive())
}
