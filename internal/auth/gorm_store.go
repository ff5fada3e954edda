package auth

import (
	"context"
	"errors"
	"time"

	internalmodels "github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

// errUnsupportedGrant is returned by the code and refresh lookups: only the
// password and client_credentials grants are served, neither issues codes or refresh tokens.
var errUnsupportedGrant = errors.New("grant not supported by this token store")

type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

// GetByID returns the client as *OAuthClient, which verifies bcrypt secrets.
func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client internalmodels.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, oauth2errors.ErrInvalidClient
		}
		return nil, err
	}
	return &client, nil
}

// GormTokenStore persists issued access tokens. Deleting a row revokes the token.
type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &internalmodels.OAuthToken{
		ClientID:    info.GetClientID(),
		AccessToken: info.GetAccess(),
		Scopes:      info.GetScope(),
		ExpiresAt:   info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}
	uid, err := s.actingUserID(ctx, info)
	if err != nil {
		return err
	}
	if uid != "" {
		token.UserID = &uid
	}
	return s.db.WithContext(ctx).Create(token).Error
}

// actingUserID returns the user a token acts as. Client credentials tokens
// carry no user and act as the client's owner.
func (s *GormTokenStore) actingUserID(ctx context.Context, info oauth2.TokenInfo) (string, error) {
	if uid := info.GetUserID(); uid != "" {
		return uid, nil
	}
	var client internalmodels.OAuthClient
	err := s.db.WithContext(ctx).Select("user_id").Where("id = ?", info.GetClientID()).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return client.GetUserID(), nil
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&internalmodels.OAuthToken{}).Error
}

// RemoveByUser revokes every token issued to userID and returns how many were removed.
func (s *GormTokenStore) RemoveByUser(ctx context.Context, userID string) (int64, error) {
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&internalmodels.OAuthToken{})
	return result.RowsAffected, result.Error
}

// GetByAccess returns nil, nil for unknown or expired tokens.
func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	if err := s.db.WithContext(ctx).Where("access_token = ?", access).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, nil
	}

	info := &models.Token{
		ClientID:        token.ClientID,
		Access:          token.AccessToken,
		AccessCreateAt:  token.CreatedAt,
		AccessExpiresIn: token.ExpiresAt.Sub(token.CreatedAt),
		Scope:           token.Scopes,
	}
	if token.UserID != nil {
		info.UserID = *token.UserID
	}
	return info, nil
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return errUnsupportedGrant
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	return nil, errUnsupportedGrant
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return nil, errUnsupportedGrant
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return errUnsupportedGrant
}
