package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientService manages the API clients allowed to request tokens.
type ClientService interface {
	// CreateClient registers a client owned by userID and returns it together
	// with the plain secret. The secret is only stored hashed.
	CreateClient(ctx context.Context, userID uint, name, domain string) (*models.OAuthClient, string, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, userID uint) error
}

const defaultGrantTypes = "password client_credentials"

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, userID uint, name, domain string) (*models.OAuthClient, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", errs.NewValidationError("name", "this field is required")
	}

	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	client := &models.OAuthClient{
		ID:         uuid.NewString(),
		Secret:     string(hash),
		Name:       name,
		Domain:     domain,
		UserID:     userID,
		Scopes:     "read write",
		GrantTypes: defaultGrantTypes,
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, "", err
	}
	log.WithField("client_id", client.ID).Info("OAuth client created")
	return client, secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, notFoundOr(err, "client", id)
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, userID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("client", clientID)
	}
	return nil
}
