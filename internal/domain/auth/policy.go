package auth

// Area identifies a protected region of the UI for access-control decisions.
type Area string

const (
	// AreaPublic covers the sign-in and registration screens. Always reachable.
	AreaPublic Area = "public"
	// AreaAdmin covers the admin dashboard and event management screens.
	AreaAdmin Area = "admin"
	// AreaStudent covers the student dashboard and event browsing screens.
	AreaStudent Area = "student"
)

// HomeArea returns the area a role lands on after sign-in.
func HomeArea(role Role) Area {
	switch role {
	case RoleAdmin:
		return AreaAdmin
	case RoleStudent:
		return AreaStudent
	default:
		return AreaPublic
	}
}

// Decision is the outcome of an access-policy check. A denied request is
// always resolved as a redirect, never surfaced as an error.
type Decision struct {
	Allow        bool
	RedirectTo   Area
	ClearSession bool
}

// Policy decides whether an identity may enter a requested area.
//
// TerminateOnMismatch controls what happens when an authenticated user
// requests the other role's area. The default (false) treats the mismatch as
// misnavigation and redirects to the user's own area; when set, the session
// is also cleared, treating the mismatch as suspicious.
type Policy struct {
	TerminateOnMismatch bool
}

// Decide evaluates the policy for the given identity (nil when anonymous)
// and requested area. It is pure: no side effects, no ordering dependence.
func (p Policy) Decide(identity *Identity, area Area) Decision {
	if area == AreaPublic {
		return Decision{Allow: true}
	}

	// Anonymous visitors never reach a protected area. The session is cleared
	// too so a half-broken credential cannot linger in the store.
	if identity == nil || !identity.Role.Valid() {
		return Decision{RedirectTo: AreaPublic, ClearSession: true}
	}

	switch identity.Role {
	case RoleAdmin:
		if area == AreaAdmin {
			return Decision{Allow: true}
		}
	case RoleStudent:
		if area == AreaStudent {
			return Decision{Allow: true}
		}
	}

	return Decision{
		RedirectTo:   HomeArea(identity.Role),
		ClearSession: p.TerminateOnMismatch,
	}
}
