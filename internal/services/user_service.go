package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"gorm.io/gorm"
)

type UserService interface {
	// CreateUser registers a user. Password must be plain text; it is hashed here.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return errs.NewValidationError("username", "this field is required")
	}
	if len(user.Password) < 8 {
		return errs.NewValidationError("password", "must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return errs.NewConflictError("username", "a user with that username already exists")
	}

	if err := user.HashPassword(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewConflictError("username", "a user with that username already exists")
		}
		return err
	}
	return nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "user", username)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return &user, nil
}
