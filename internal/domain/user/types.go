package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleOwner Role = "venue_owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleFromOwnerFlag maps the remote is_venue_owner flag onto a role.
func RoleFromOwnerFlag(isVenueOwner bool) Role {
	if isVenueOwner {
		return RoleOwner
	}
	return RoleGuest
}

// Landing is the view a freshly signed-in user should be sent to.
func (r Role) Landing() string {
	if r == RoleOwner {
		return "owner"
	}
	return "guest"
}
