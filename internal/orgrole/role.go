package orgrole

import "strings"

// Role is an approver role on an approval level.
type Role string

const (
	RoleSupervisor            Role = "SUPERVISOR"
	RoleUnitHead              Role = "UNIT_HEAD"
	RoleHeadOfDepartment      Role = "HEAD_OF_DEPARTMENT"
	RoleHeadOfIndependentUnit Role = "HEAD_OF_INDEPENDENT_UNIT"
	RoleDirector              Role = "DIRECTOR"
	RoleHROfficer             Role = "HR_OFFICER"
	RoleHRDirector            Role = "HR_DIRECTOR"
	RoleChiefDirector         Role = "CHIEF_DIRECTOR"
)

var allRoles = []Role{
	RoleSupervisor,
	RoleUnitHead,
	RoleHeadOfDepartment,
	RoleHeadOfIndependentUnit,
	RoleDirector,
	RoleHROfficer,
	RoleHRDirector,
	RoleChiefDirector,
}

func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts any casing and hyphen/space separators.
func ParseRole(s string) (Role, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	r := Role(s)
	return r, r.Valid()
}

// Profile is the part of a staff record the classifier looks at.
type Profile struct {
	Position    string
	Grade       string
	Unit        string
	Directorate string
}

// OwnRoles lists the approver roles the profile itself holds. A chain built for
// this person must never contain any of them.
func OwnRoles(p Profile) []Role {
	var roles []Role

	if IsChiefDirector(p.Position, p.Grade) {
		return []Role{RoleChiefDirector}
	}
	if IsDirector(p.Position, p.Grade) {
		roles = append(roles, RoleDirector)
		if IsHRDirector(p.Position, p.Grade, p.Unit, p.Directorate) {
			roles = append(roles, RoleHRDirector)
		}
	}
	if IsUnitHead(p.Position) {
		roles = append(roles, RoleUnitHead)
		if IsHeadOfIndependentUnit(p.Position, p.Unit) {
			roles = append(roles, RoleHeadOfIndependentUnit)
		}
	}
	if IsHeadOfDepartment(p.Position, p.Grade, p.Unit, p.Directorate) {
		roles = append(roles, RoleHeadOfDepartment)
	}
	if IsHROfficer(p.Position, p.Grade, p.Unit, p.Directorate) {
		roles = append(roles, RoleHROfficer)
	}
	return roles
}

// HoldsRole reports whether r is one of the profile's own roles.
func HoldsRole(p Profile, r Role) bool {
	for _, own := range OwnRoles(p) {
		if own == r {
			return true
		}
	}
	return false
}
