package models

import (
	"fmt"
	"sort"
)

// Role determines which operations a user may perform.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleAdmin        Role = "admin"
)

// Group names backing the group-managed roles.
const (
	ManagerGroup      = "Manager"
	DeliveryCrewGroup = "Delivery Crew"
)

// GroupName returns the group that grants r. Only Manager and Delivery Crew
// are group-managed; Customer is implicit and Admin comes from the superuser flag.
func (r Role) GroupName() (string, error) {
	switch r {
	case RoleManager:
		return ManagerGroup, nil
	case RoleDeliveryCrew:
		return DeliveryCrewGroup, nil
	default:
		return "", fmt.Errorf("role %q is not group managed", r)
	}
}

// GroupRoles lists the roles whose membership lives in a Group.
func GroupRoles() []Role {
	return []Role{RoleManager, RoleDeliveryCrew}
}

// RoleSet is the set of roles held by one user.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether the set satisfies r. Admin satisfies every role.
func (s RoleSet) Has(r Role) bool {
	if _, ok := s[RoleAdmin]; ok {
		return true
	}
	_, ok := s[r]
	return ok
}

// HasAny reports whether the set satisfies at least one of roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Holds reports literal membership, without the Admin wildcard.
func (s RoleSet) Holds(r Role) bool {
	_, ok := s[r]
	return ok
}

// Slice returns the roles sorted by name.
func (s RoleSet) Slice() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Principal is the requesting identity passed explicitly to every guarded operation.
type Principal struct {
	UserID uint
	Roles  RoleSet
}
