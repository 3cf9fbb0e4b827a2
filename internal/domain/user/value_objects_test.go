//go:build unit

package user_test

import (
	"testing"

	"huellitas/internal/domain/user"

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
		{name: "valid", input: "ana@example.com", want: "ana@example.com"},
		{name: "trims whitespace", input: "  ana@example.com  ", want: "ana@example.com"},
		{name: "subdomain", input: "ana@mail.example.co", want: "ana@mail.example.co"},
		{name: "missing at", input: "ana.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "ana@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("corto1")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("contraseña-larga")
	require.NoError(t, err)
	assert.Equal(t, "contraseña-larga", p.Value())
}

func TestNewName(t *testing.T) {
	_, err := user.NewName("   ")
	assert.ErrorIs(t, err, user.ErrEmptyName)

	n, err := user.NewName("  Ana María  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", n.Value())
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("cliente")
	require.NoError(t, err)
	assert.Equal(t, user.RoleCliente, role)

	_, err = user.NewRole("moderador")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	name, err := user.NewName("Ana María")
	require.NoError(t, err)
	email, err := user.NewEmail("ana@example.com")
	require.NoError(t, err)

	u := user.NewUser(name, email, "$2a$10$hash", "3001234567")

	assert.Equal(t, user.RoleCliente, u.Role())
	assert.True(t, u.IsActive())
	assert.Equal(t, "ana@example.com", u.Email().Value())
	assert.Equal(t, "3001234567", u.Phone())
}
