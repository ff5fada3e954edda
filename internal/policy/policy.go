// Package policy decides which principal may run which operation.
//
// Decisions are pure: they look only at the principal's roles and, for
// order-scoped operations, at the order's owner and assigned crew. Nothing
// here touches storage, so every rule can be checked before a mutation runs.
package policy

import (
	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
)

// Operation names a guarded action.
type Operation string

const (
	// Orders
	ListOrders           Operation = "list orders"
	PlaceOrder           Operation = "place order"
	ViewOrder            Operation = "view order"
	ToggleDeliveryStatus Operation = "toggle delivery status"
	AssignDeliveryCrew   Operation = "assign delivery crew"
	DeleteOrder          Operation = "delete order"

	// Catalog
	CreateMenuItem Operation = "create menu item"
	UpdateMenuItem Operation = "update menu item"
	ToggleFeatured Operation = "toggle featured"
	DeleteMenuItem Operation = "delete menu item"
	CreateCategory Operation = "create category"

	// Role groups
	ManageGroups Operation = "manage groups"

	// API clients
	ManageClients Operation = "manage api clients"
)

// orderScoped operations need the order to decide.
var orderScoped = map[Operation]bool{
	ViewOrder:            true,
	ToggleDeliveryStatus: true,
}

// roleRules lists the roles that may run role-only operations.
// Admin satisfies any of them through RoleSet.Has.
var roleRules = map[Operation][]models.Role{
	ListOrders:         {models.RoleCustomer},
	PlaceOrder:         {models.RoleCustomer},
	AssignDeliveryCrew: {models.RoleManager},
	DeleteOrder:        {models.RoleManager},
	CreateMenuItem:     {models.RoleAdmin},
	UpdateMenuItem:     {models.RoleAdmin},
	ToggleFeatured:     {models.RoleManager},
	DeleteMenuItem:     {models.RoleAdmin},
	CreateCategory:     {models.RoleAdmin},
	ManageGroups:       {models.RoleManager},
	ManageClients:      {models.RoleAdmin},
}

// RequiresOrder reports whether op must be authorized against a loaded order.
func RequiresOrder(op Operation) bool {
	return orderScoped[op]
}

// Authorize returns nil when p may run op, or a ForbiddenError.
// order is required for order-scoped operations and ignored otherwise.
func Authorize(p models.Principal, op Operation, order *models.Order) error {
	if p.UserID == 0 || p.Roles == nil {
		return errs.NewForbiddenError(string(op), "authentication required")
	}

	if orderScoped[op] {
		if order == nil {
			return errs.NewForbiddenError(string(op), "order context required")
		}
		return authorizeOrder(p, op, order)
	}

	roles, ok := roleRules[op]
	if !ok {
		return errs.NewForbiddenError(string(op), "unknown operation")
	}
	if !p.Roles.HasAny(roles...) {
		return errs.NewForbiddenError(string(op), "requires one of "+describe(roles))
	}
	return nil
}

func authorizeOrder(p models.Principal, op Operation, order *models.Order) error {
	if p.Roles.Has(models.RoleManager) {
		return nil
	}
	switch op {
	case ViewOrder:
		if order.IsOwnedBy(p.UserID) {
			return nil
		}
		if p.Roles.Holds(models.RoleDeliveryCrew) && order.IsAssignedTo(p.UserID) {
			return nil
		}
		return errs.NewForbiddenError(string(op), "order belongs to another customer")
	case ToggleDeliveryStatus:
		if p.Roles.Holds(models.RoleDeliveryCrew) && order.IsAssignedTo(p.UserID) {
			return nil
		}
		return errs.NewForbiddenError(string(op), "only the assigned delivery crew or a manager may change the status")
	}
	return errs.NewForbiddenError(string(op), "unknown operation")
}

// Scope tells the order listing which orders a principal may see.
type Scope int

const (
	ScopeOwned Scope = iota
	ScopeAssigned
	ScopeAll
)

// ListScope picks the widest scope the principal qualifies for.
func ListScope(p models.Principal) Scope {
	switch {
	case p.Roles.Has(models.RoleManager):
		return ScopeAll
	case p.Roles.Holds(models.RoleDeliveryCrew):
		return ScopeAssigned
	default:
		return ScopeOwned
	}
}

func describe(roles []models.Role) string {
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += ", "
		}
		out += string(r)
	}
	if out != string(models.RoleAdmin) {
		out += ", admin"
	}
	return out
}
