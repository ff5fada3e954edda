package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a pending line item. At most one line exists per (user, menu item).
// UnitPrice is the menu price captured when the line was added.
type CartLine struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"uniqueIndex:idx_cart_user_item;not null"`
	MenuItemID uint `gorm:"uniqueIndex:idx_cart_user_item;not null"`
	MenuItem   MenuItem
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
}

// Order status values. Status is a two-state flag, not an enum.
const (
	StatusPlaced    = false
	StatusDelivered = true
)

// Order is created atomically from a cart snapshot. Only Status and
// DeliveryCrewID change after creation.
type Order struct {
	ID             uint `gorm:"primaryKey"`
	UserID         uint `gorm:"index;not null"`
	User           User
	DeliveryCrewID *uint           `gorm:"index"`
	DeliveryCrew   *User           `gorm:"foreignKey:DeliveryCrewID"`
	Status         bool            `gorm:"index;default:false"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Date           time.Time       `gorm:"index;not null"`
	Items          []OrderItem     `gorm:"constraint:OnDelete:CASCADE;"`
}

// OrderItem is an immutable line of a placed order with its price snapshot.
type OrderItem struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    uint `gorm:"uniqueIndex:idx_order_item;not null"`
	MenuItemID uint `gorm:"uniqueIndex:idx_order_item;not null"`
	MenuItem   MenuItem
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}

func (o *Order) IsAssignedTo(userID uint) bool {
	return o.DeliveryCrewID != nil && *o.DeliveryCrewID == userID
}

// StatusLabel returns "delivered" or "placed".
func (o *Order) StatusLabel() string {
	if o.Status == StatusDelivered {
		return "delivered"
	}
	return "placed"
}
