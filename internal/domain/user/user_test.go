//go:build unit

package user_test

import (
	"testing"

	"field-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "  Player@Example.COM ", want: "player@example.com"},
		{in: "first.last+fives@club.eg", want: "first.last+fives@club.eg"},
		{in: "no-at-sign", err: user.ErrInvalidEmail},
		{in: "a@b", err: user.ErrInvalidEmail},
		{in: "", err: user.ErrInvalidEmail},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := user.NewEmail(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"user", "owner", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)

	assert.True(t, user.RoleOwner.CanSelfRegister())
	assert.False(t, user.RoleAdmin.CanSelfRegister())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("long-enough")
	require.NoError(t, err)
	assert.Equal(t, "long-enough", p.Value())
}
