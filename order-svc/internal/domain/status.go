package domain

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPreparing Status = "PREPARING"
	StatusReady     Status = "READY"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ActiveStatuses are the statuses shown on kitchen, bar and wait views.
var ActiveStatuses = []Status{StatusPending, StatusPreparing, StatusReady}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses have no way out.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Active() bool {
	return s == StatusPending || s == StatusPreparing || s == StatusReady
}

// transitions maps from -> to -> roles allowed to trigger it. Owners are
// allowed everything listed here.
var transitions = map[Status]map[Status][]Role{
	StatusPending: {
		StatusPreparing: {RoleKitchen, RoleBartender},
		StatusCancelled: {RoleKitchen, RoleWaitstaff},
	},
	StatusPreparing: {
		StatusReady:     {RoleKitchen, RoleBartender},
		StatusPending:   {RoleKitchen, RoleBartender},
		StatusCancelled: {RoleKitchen, RoleWaitstaff},
	},
	StatusReady: {
		StatusCompleted: {RoleKitchen, RoleBartender, RoleWaitstaff},
		StatusPreparing: {RoleKitchen, RoleBartender},
		StatusCancelled: {RoleKitchen, RoleWaitstaff},
	},
}

// NextStatuses returns every status reachable from s in one step, whoever
// triggers it.
func NextStatuses(s Status) []Status {
	order := []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
	next := []Status{}
	for _, to := range order {
		if _, ok := transitions[s][to]; ok {
			next = append(next, to)
		}
	}
	return next
}

// CanTransition reports whether from -> to is a legal step at all.
func CanTransition(from, to Status) bool {
	_, ok := transitions[from][to]
	return ok
}

// RoleCanTransition reports whether role may trigger the legal step from -> to.
func RoleCanTransition(role Role, from, to Status) bool {
	roles, ok := transitions[from][to]
	if !ok {
		return false
	}
	return CanAccess(role, roles...)
}
