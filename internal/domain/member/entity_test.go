//go:build unit

package member_test

import (
	"testing"

	"roomescape-api/internal/domain/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		for _, s := range []string{"user@example.com", "a.b+tag@sub.example.org"} {
			_, err := member.NewEmail(s)
			assert.NoError(t, err, "input %q", s)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, s := range []string{"", "plainstring", "missing@tld", "@example.com"} {
			_, err := member.NewEmail(s)
			assert.ErrorIs(t, err, member.ErrInvalidEmail, "input %q", s)
		}
	})
}

func TestNewRole(t *testing.T) {
	tests := []struct {
		input   string
		isAdmin bool
		errIs   error
	}{
		{input: "user", isAdmin: false},
		{input: "admin", isAdmin: true},
		{input: "superuser", errIs: member.ErrInvalidRole},
		{input: "", errIs: member.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run("role "+tt.input, func(t *testing.T) {
			role, err := member.NewRole(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isAdmin, role.IsAdmin())
		})
	}
}

func TestNewMember(t *testing.T) {
	email, err := member.NewEmail("mia@example.com")
	require.NoError(t, err)

	t.Run("valid member", func(t *testing.T) {
		m, err := member.NewMember("mia", email, "hashed", member.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, "mia", m.Name())
		assert.False(t, m.IsAdmin())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := member.NewMember("  ", email, "hashed", member.RoleUser)
		assert.ErrorIs(t, err, member.ErrBlankName)
	})
}
