package session

import (
	"errors"
	"time"
)

// Role is the authorization level carried by a session. Anything the
// backend sends outside the known set is treated as the least
// privileged role, never as admin.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return Role(s)
	default:
		return RoleEmployee
	}
}

// Session is the client-held authenticated identity. It is either fully
// present (token, role and user id all set) or absent; Expiry is zero
// when no client-side expiry was recorded.
type Session struct {
	Token  string
	Role   Role
	UserID string
	Expiry time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.Expiry.IsZero() && !now.Before(s.Expiry)
}

var ErrNoSession = errors.New("session: no session found")
