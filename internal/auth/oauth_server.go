package auth

import (
	"context"
	"time"

	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// AccessTokenTTL is the lifetime of every issued access token.
const AccessTokenTTL = 2 * time.Hour

type OAuthService struct {
	server *server.Server
	tokens *GormTokenStore
	users  services.UserService
}

func NewOAuthService(tokens *GormTokenStore, clients *GormClientStore, users services.UserService, roles services.RoleService, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()

	manager.SetPasswordTokenCfg(&manage.Config{AccessTokenExp: AccessTokenTTL})
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: AccessTokenTTL})

	// Use JWT for access tokens
	manager.MapAccessGenerate(NewAccessTokenGenerator([]byte(jwtSecret), jwt.SigningMethodHS512, roles))
	manager.MapTokenStorage(tokens)
	manager.MapClientStorage(clients)

	srv := server.NewDefaultServer(manager)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{
		server: srv,
		tokens: tokens,
		users:  users,
	}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}

// IsRevoked reports whether access is unknown to the token store, expired, or revoked.
func (o *OAuthService) IsRevoked(ctx context.Context, access string) (bool, error) {
	info, err := o.tokens.GetByAccess(ctx, access)
	if err != nil {
		return false, err
	}
	return info == nil, nil
}

// RevokeUserTokens deletes every access token issued to the user.
func (o *OAuthService) RevokeUserTokens(ctx context.Context, userID string) (int64, error) {
	n, err := o.tokens.RemoveByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	log.WithFields(logrus.Fields{
		"user_id": userID,
		"revoked": n,
	}).Info("User tokens revoked")
	return n, nil
}
