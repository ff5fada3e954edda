package services

import (
	"context"
	"errors"
	"time"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/policy"
	"github.com/franciscosanchezn/bytebistro-api/internal/pricing"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService is the order lifecycle engine. It performs no authorization;
// callers go through GuardedOrderService.
type OrderService interface {
	// PlaceOrder turns the customer's cart into an order in one transaction:
	// order row, one item per cart line, cart cleared. Nothing persists on failure.
	PlaceOrder(ctx context.Context, customerID uint) (*models.Order, error)
	// ToggleDeliveryStatus flips Placed and Delivered.
	ToggleDeliveryStatus(ctx context.Context, orderID uint) (*models.Order, error)
	// AssignDeliveryCrew sets the order's crew. The user must be in the Delivery Crew group.
	AssignDeliveryCrew(ctx context.Context, orderID, crewUserID uint) (*models.Order, error)
	// DeleteOrder removes the order and its items.
	DeleteOrder(ctx context.Context, orderID uint) error
	// ListOrders returns the orders visible to p.
	ListOrders(ctx context.Context, p models.Principal) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID uint) (*models.Order, error)
	// GetOrderDetail returns the order's items with their menu items loaded.
	GetOrderDetail(ctx context.Context, orderID uint) ([]models.OrderItem, error)
}

type orderService struct {
	db    *gorm.DB
	roles RoleService
	now   func() time.Time
}

func NewOrderService(db *gorm.DB, roles RoleService) OrderService {
	return &orderService{db: db, roles: roles, now: time.Now}
}

func (s *orderService) PlaceOrder(ctx context.Context, customerID uint) (*models.Order, error) {
	var order *models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Where("user_id = ?", customerID).Order("id").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return errs.NewValidationError("cart", "cart is empty")
		}

		priced := make([]pricing.Line, len(lines))
		lineIDs := make([]uint, len(lines))
		for i, l := range lines {
			priced[i] = pricing.Line{Quantity: l.Quantity, UnitPrice: l.UnitPrice}
			lineIDs[i] = l.ID
		}
		total, err := pricing.CartTotal(priced...)
		if err != nil {
			return err
		}

		order = &models.Order{
			UserID: customerID,
			Status: models.StatusPlaced,
			Total:  total,
			Date:   s.now().UTC(),
		}
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, len(lines))
		for i, l := range lines {
			price, err := pricing.LineTotal(l.Quantity, l.UnitPrice)
			if err != nil {
				return err
			}
			items[i] = models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      price,
			}
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return err
		}

		// Delete exactly the lines that were priced. A concurrent placement
		// that already consumed them leaves fewer rows to delete.
		result := tx.Where("user_id = ? AND id IN ?", customerID, lineIDs).Delete(&models.CartLine{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(lines)) {
			return errs.NewConflictError("cart", "cart changed while the order was being placed")
		}

		order.Items = items
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidation) || errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("Order placement rolled back")
		return nil, errs.NewTransactionError("place order", err)
	}

	log.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"customer_id": customerID,
		"total":       order.Total.StringFixed(2),
		"items":       len(order.Items),
	}).Info("Order placed")
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("DeliveryCrew").First(&order, orderID).Error; err != nil {
		return nil, notFoundOr(err, "order", orderID)
	}
	return &order, nil
}

func (s *orderService) ToggleDeliveryStatus(ctx context.Context, orderID uint) (*models.Order, error) {
	result := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", gorm.Expr("NOT status"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFoundError("order", orderID)
	}
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"status":   order.StatusLabel(),
	}).Info("Order status toggled")
	return order, nil
}

func (s *orderService) AssignDeliveryCrew(ctx context.Context, orderID, crewUserID uint) (*models.Order, error) {
	if crewUserID == 0 {
		return nil, errs.NewValidationError("delivery_crew", "this field is required")
	}
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	isCrew, err := s.roles.HasRole(ctx, crewUserID, models.RoleDeliveryCrew)
	if err != nil {
		return nil, err
	}
	if !isCrew {
		return nil, errs.NewValidationError("delivery_crew", "user is not a member of the Delivery Crew group")
	}

	if err := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).
		Update("delivery_crew_id", crewUserID).Error; err != nil {
		return nil, err
	}
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"crew_id":  crewUserID,
	}).Info("Delivery crew assigned")
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFoundOr(err, "order", orderID)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return err
		}
		return errs.NewTransactionError("delete order", err)
	}
	log.WithField("order_id", orderID).Info("Order deleted")
	return nil
}

func (s *orderService) ListOrders(ctx context.Context, p models.Principal) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Order("id")
	switch policy.ListScope(p) {
	case policy.ScopeAssigned:
		query = query.Where("delivery_crew_id = ?", p.UserID)
	case policy.ScopeOwned:
		query = query.Where("user_id = ?", p.UserID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	var items []models.OrderItem
	if err := s.db.WithContext(ctx).Preload("MenuItem").
		Where("order_id = ?", orderID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
