package domain

type Role string

const (
	RoleOwner     Role = "OWNER"
	RoleKitchen   Role = "KITCHEN"
	RoleWaitstaff Role = "WAITSTAFF"
	RoleBartender Role = "BARTENDER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleKitchen, RoleWaitstaff, RoleBartender:
		return true
	}
	return false
}

// StaffRoles are the roles an owner may provision.
var StaffRoles = []Role{RoleKitchen, RoleWaitstaff, RoleBartender}

// CanAccess is the access gate: owners pass every check, everyone else needs
// membership in required.
func CanAccess(role Role, required ...Role) bool {
	if role == RoleOwner {
		return true
	}
	if !role.Valid() {
		return false
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}

// RouteRoles lists the roles each staff-facing area requires.
var RouteRoles = map[string][]Role{
	"kitchen":   {RoleKitchen},
	"bar":       {RoleBartender},
	"wait":      {RoleWaitstaff},
	"dashboard": {RoleOwner},
	"analytics": {RoleOwner},
	"staff":     {RoleOwner},
	"tables":    {RoleOwner},
	"settings":  {RoleOwner},
}

// CanAccessRoute applies CanAccess to a named area. Unknown areas are denied.
func CanAccessRoute(role Role, route string) bool {
	required, ok := RouteRoles[route]
	if !ok {
		return false
	}
	return CanAccess(role, required...)
}

func RedirectPath(role Role) string {
	switch role {
	case RoleOwner:
		return "/dashboard"
	case RoleKitchen:
		return "/kitchen"
	case RoleWaitstaff:
		return "/wait"
	case RoleBartender:
		return "/bar"
	default:
		return "/login"
	}
}
