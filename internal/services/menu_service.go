package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuFilter narrows ListMenuItems.
type MenuFilter struct {
	// Search matches item title or category title, case insensitive.
	Search string
	// Ordering is one of "price", "-price", "category", "-category". Empty orders by id.
	Ordering string
}

// MenuItemInput carries the fields of a new menu item.
type MenuItemInput struct {
	Title    string
	Price    decimal.Decimal
	Featured bool
	Category string // category title
}

// MenuService provides methods to interact with the menu catalog
type MenuService interface {
	ListMenuItems(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, input MenuItemInput) (*models.MenuItem, error)
	// UpdateMenuItem changes title and/or price. Cart lines and order items keep their snapshots.
	UpdateMenuItem(ctx context.Context, id uint, title *string, price *decimal.Decimal) (*models.MenuItem, error)
	ToggleFeatured(ctx context.Context, id uint) (*models.MenuItem, error)
	// DeleteMenuItem removes the item and the cart lines pointing at it.
	// Items referenced by placed orders cannot be deleted.
	DeleteMenuItem(ctx context.Context, id uint) error
}

type menuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

var menuOrderings = map[string]string{
	"price":     "menu_items.price ASC",
	"-price":    "menu_items.price DESC",
	"category":  "menu_items.category_id ASC",
	"-category": "menu_items.category_id DESC",
}

// likeEscaper makes search input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (s *menuService) ListMenuItems(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	query := s.db.WithContext(ctx).Joins("Category")
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`LOWER(menu_items.title) LIKE ? ESCAPE '\' OR menu_items.category_id IN (?)`, like,
			s.db.WithContext(ctx).Model(&models.Category{}).Select("id").Where(`LOWER(title) LIKE ? ESCAPE '\'`, like))
	}
	if filter.Ordering != "" {
		order, ok := menuOrderings[filter.Ordering]
		if !ok {
			return nil, errs.NewValidationError("ordering", "must be one of price, -price, category, -category")
		}
		query = query.Order(order)
	}
	query = query.Order("menu_items.id")

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).Joins("Category").First(&item, "menu_items.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "menu item", id)
	}
	return &item, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, input MenuItemInput) (*models.MenuItem, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, errs.NewValidationError("title", "this field is required")
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, errs.NewValidationError("category", "this field is required")
	}

	var category models.Category
	if err := s.db.WithContext(ctx).Where("title = ?", input.Category).First(&category).Error; err != nil {
		return nil, notFoundOr(err, "category", input.Category)
	}
	if err := s.ensureTitleFree(ctx, input.Title, 0); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Title:      input.Title,
		Price:      input.Price,
		Featured:   input.Featured,
		CategoryID: category.ID,
	}
	if err := s.db.WithContext(ctx).Omit("Category").Create(item).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errs.NewConflictError("title", "This title already exists")
		}
		return nil, err
	}
	item.Category = category
	return item, nil
}

func (s *menuService) ensureTitleFree(ctx context.Context, title string, exceptID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("title = ?", title)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConflictError("title", "This title already exists")
	}
	return nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id uint, title *string, price *decimal.Decimal) (*models.MenuItem, error) {
	if title == nil && price == nil {
		return nil, errs.NewValidationError("title", "title or price is required")
	}
	updates := map[string]interface{}{}
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return nil, errs.NewValidationError("title", "must not be blank")
		}
		updates["title"] = t
	}
	if price != nil {
		if err := validatePrice(*price); err != nil {
			return nil, err
		}
		updates["price"] = *price
	}

	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if t, ok := updates["title"].(string); ok {
		if err := s.ensureTitleFree(ctx, t, id); err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errs.NewConflictError("title", "This title already exists")
		}
		return nil, err
	}
	log.WithField("menu_item_id", item.ID).Info("Menu item updated")
	return s.GetMenuItem(ctx, id)
}

func (s *menuService) ToggleFeatured(ctx context.Context, id uint) (*models.MenuItem, error) {
	if _, err := s.GetMenuItem(ctx, id); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).
		Update("featured", gorm.Expr("NOT featured")).Error; err != nil {
		return nil, err
	}
	return s.GetMenuItem(ctx, id)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			return notFoundOr(err, "menu item", id)
		}
		var ordered int64
		if err := tx.Model(&models.OrderItem{}).Where("menu_item_id = ?", id).Count(&ordered).Error; err != nil {
			return err
		}
		if ordered > 0 {
			return errs.NewConflictError("menuitem", "menu item is referenced by placed orders")
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValidationError("price", "must not be negative")
	}
	if price.GreaterThan(pricing.MaxAmount) {
		return errs.NewValidationError("price", "must not exceed "+pricing.MaxAmount.StringFixed(2))
	}
	return nil
}
