package services

import (
	"context"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/policy"
)

// GuardedOrderService runs the access policy before every lifecycle operation.
// A denied call returns a ForbiddenError and changes nothing.
type GuardedOrderService interface {
	PlaceOrder(ctx context.Context, p models.Principal) (*models.Order, error)
	ListOrders(ctx context.Context, p models.Principal) ([]models.Order, error)
	GetOrderDetail(ctx context.Context, p models.Principal, orderID uint) (*models.Order, []models.OrderItem, error)
	ToggleDeliveryStatus(ctx context.Context, p models.Principal, orderID uint) (*models.Order, error)
	AssignDeliveryCrew(ctx context.Context, p models.Principal, orderID, crewUserID uint) (*models.Order, error)
	DeleteOrder(ctx context.Context, p models.Principal, orderID uint) error
}

type guardedOrderService struct {
	orders OrderService
}

func NewGuardedOrderService(orders OrderService) GuardedOrderService {
	return &guardedOrderService{orders: orders}
}

// authorizeOn loads the order first for order-scoped operations, so a
// missing order reports NotFound rather than Forbidden.
func (g *guardedOrderService) authorizeOn(ctx context.Context, p models.Principal, op policy.Operation, orderID uint) (*models.Order, error) {
	order, err := g.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(p, op, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (g *guardedOrderService) PlaceOrder(ctx context.Context, p models.Principal) (*models.Order, error) {
	if err := policy.Authorize(p, policy.PlaceOrder, nil); err != nil {
		return nil, err
	}
	return g.orders.PlaceOrder(ctx, p.UserID)
}

func (g *guardedOrderService) ListOrders(ctx context.Context, p models.Principal) ([]models.Order, error) {
	if err := policy.Authorize(p, policy.ListOrders, nil); err != nil {
		return nil, err
	}
	return g.orders.ListOrders(ctx, p)
}

func (g *guardedOrderService) GetOrderDetail(ctx context.Context, p models.Principal, orderID uint) (*models.Order, []models.OrderItem, error) {
	order, err := g.authorizeOn(ctx, p, policy.ViewOrder, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := g.orders.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (g *guardedOrderService) ToggleDeliveryStatus(ctx context.Context, p models.Principal, orderID uint) (*models.Order, error) {
	if _, err := g.authorizeOn(ctx, p, policy.ToggleDeliveryStatus, orderID); err != nil {
		return nil, err
	}
	return g.orders.ToggleDeliveryStatus(ctx, orderID)
}

func (g *guardedOrderService) AssignDeliveryCrew(ctx context.Context, p models.Principal, orderID, crewUserID uint) (*models.Order, error) {
	if err := policy.Authorize(p, policy.AssignDeliveryCrew, nil); err != nil {
		return nil, err
	}
	return g.orders.AssignDeliveryCrew(ctx, orderID, crewUserID)
}

func (g *guardedOrderService) DeleteOrder(ctx context.Context, p models.Principal, orderID uint) error {
	if err := policy.Authorize(p, policy.DeleteOrder, nil); err != nil {
		return err
	}
	return g.orders.DeleteOrder(ctx, orderID)
}
