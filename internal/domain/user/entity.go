package user

import "time"

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole maps arbitrary input to a known role, defaulting to candidate
// the way the registration form always has.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleRecruiter:
		return RoleRecruiter
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleCandidate
	}
}

// CanAccess reports whether a session role satisfies a required role.
// Admin is a superset: it is allowed anywhere recruiter or candidate is.
func (r Role) CanAccess(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Snapshot is the password-free shape returned by every facade operation
// and stored inside the session.
type Snapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) Snapshot() Snapshot {
	return Snapshot{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
