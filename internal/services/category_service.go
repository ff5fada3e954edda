package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"gorm.io/gorm"
)

type CategoryService interface {
	// ListCategories returns categories whose title contains search (all when empty).
	ListCategories(ctx context.Context, search string) ([]models.Category, error)
	CreateCategory(ctx context.Context, title string) (*models.Category, error)
}

type categoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{db: db}
}

func (s *categoryService) ListCategories(ctx context.Context, search string) ([]models.Category, error) {
	var categories []models.Category
	query := s.db.WithContext(ctx).Order("id")
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.NewValidationError("title", "this field is required")
	}

	var existing models.Category
	if err := s.db.WithContext(ctx).Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, errs.NewConflictError("title", "This category already exists")
	}

	category := &models.Category{Title: title, Slug: slugify(title)}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errs.NewConflictError("title", "This category already exists")
		}
		return nil, err
	}
	return category, nil
}

func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
