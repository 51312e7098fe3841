package member

import "strings"

// Member is a registered account. Email doubles as the login identity.
type Member struct {
	id           int64
	name         string
	email        Email
	passwordHash string
	role         Role
}

func NewMember(name string, email Email, passwordHash string, role Role) (*Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	return &Member{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructMember(id int64, name string, email Email, passwordHash string, role Role) *Member {
	return &Member{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (m *Member) ID() int64            { return m.id }
func (m *Member) Name() string         { return m.name }
func (m *Member) Email() Email         { return m.email }
func (m *Member) PasswordHash() string { return m.passwordHash }
func (m *Member) Role() Role           { return m.role }
func (m *Member) IsAdmin() bool        { return m.role.IsAdmin() }
