package services

import (
	"context"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/pricing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService is the ledger of a customer's pending line items.
type CartService interface {
	// AddLine snapshots the menu item's current price into a new line.
	AddLine(ctx context.Context, userID, menuItemID uint, quantity int) (*models.CartLine, error)
	RemoveLine(ctx context.Context, userID, menuItemID uint) error
	// ClearCart removes every line of the user. Clearing an empty cart succeeds.
	ClearCart(ctx context.Context, userID uint) error
	ListCart(ctx context.Context, userID uint) ([]models.CartLine, error)
}

type cartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) AddLine(ctx context.Context, userID, menuItemID uint, quantity int) (*models.CartLine, error) {
	if menuItemID == 0 {
		return nil, errs.NewValidationError("menuitem", "this field is required")
	}
	if quantity <= 0 {
		return nil, errs.NewValidationError("quantity", "must be a positive integer")
	}

	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, menuItemID).Error; err != nil {
		return nil, notFoundOr(err, "menu item", menuItemID)
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.CartLine{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errs.NewConflictError("menuitem", "this item is already in the cart")
	}

	price, err := pricing.LineTotal(quantity, item.Price)
	if err != nil {
		return nil, err
	}
	line := &models.CartLine{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		Price:      price,
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(line).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errs.NewConflictError("menuitem", "this item is already in the cart")
		}
		return nil, err
	}
	line.MenuItem = item
	return line, nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID, menuItemID uint) error {
	if menuItemID == 0 {
		return errs.NewValidationError("menuitem", "this field is required")
	}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&models.CartLine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("cart line", menuItemID)
	}
	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}

func (s *cartService) ListCart(ctx context.Context, userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := s.db.WithContext(ctx).Preload("MenuItem").
		Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
