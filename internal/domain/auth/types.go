package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role. The set is closed:
// the upstream career-fair API only ever issues these two roles, and a
// credential carrying anything else must not be trusted.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether the role is one of the defined variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	default:
		return false
	}
}

// Identity represents the authenticated principal embedded in an upstream
// credential. It is derived solely by decoding a credential (see DecodeToken)
// and never constructed independently.
type Identity struct {
	UserID    int64
	FirstName string
	LastName  string
	Email     string
	Role      Role
}

// FullName returns the display name for navigation chrome.
func (i Identity) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}

// Session is the server-side record persisted for an authenticated browser.
// ID is an opaque session identifier; Token is the upstream bearer credential.
// Token and the identity fields always change together: a session record is
// written and removed as one unit.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity reconstructs the decoded identity carried by the session.
func (s Session) Identity() Identity {
	return Identity{
		UserID:    s.UserID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Role:      s.Role,
	}
}

// IsAdmin reports whether the session belongs to an admin user.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsStudent reports whether the session belongs to a student user.
func (s Session) IsStudent() bool { return s.Role == RoleStudent }
