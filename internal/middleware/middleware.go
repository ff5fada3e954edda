package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/bytebistro-api/internal/auth"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenChecker reports whether an access token has been revoked.
type TokenChecker interface {
	IsRevoked(ctx context.Context, access string) (bool, error)
}

// Context keys set by the authentication middleware.
const (
	ContextUserID      = "userID"
	ContextClientID    = "clientID"
	ContextScopes      = "scopes"
	ContextAccessToken = "accessToken"
)

// OAuth2Auth validates RFC 6750 bearer tokens issued by the token endpoint,
// rejects revoked ones and stores the caller's user id in the context.
func OAuth2Auth(jwtSecret []byte, tokens TokenChecker) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	keyFunc := func(*jwt.Token) (interface{}, error) { return jwtSecret, nil }

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrAuthorizationRequired,
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidRequest,
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		if tokenString == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, "Bearer token is empty")
			return
		}

		claims := &auth.AccessClaims{}
		if _, err := parser.ParseWithClaims(tokenString, claims, keyFunc); err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
			return
		}
		userID, err := claims.ParsedUserID()
		if err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			log.WithError(err).Error("Token revocation lookup failed")
			respondWithOAuth2Error(c, http.StatusInternalServerError, models.ErrServerError, "token lookup failed")
			return
		}
		if revoked {
			respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, "token has been revoked")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextAccessToken, tokenString)
		if len(claims.Audience) > 0 {
			c.Set(ContextClientID, claims.Audience[0])
		}
		if claims.Scope != "" {
			c.Set(ContextScopes, claims.Scope)
		}
		c.Next()
	}
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.AbortWithStatusJSON(status, models.NewOAuth2Error(errorCode, description))
}
