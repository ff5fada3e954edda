package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/sirupsen/logrus"
)

// TokenResponse is the RFC 6749 access token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// HandleToken handles the token endpoint for the password and client credentials grants
// @Summary Token Endpoint
// @Description Obtain an access token with a username and password, or with client credentials
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: password or client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param username formData string false "Username (password grant)"
// @Param password formData string false "Password (password grant)"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /api/v1/oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	clientID, clientSecret := c.PostForm("client_id"), c.PostForm("client_secret")
	if clientID == "" {
		clientID, clientSecret, _ = c.Request.BasicAuth()
	}
	if clientID == "" {
		c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient, "client_id and client_secret are required"))
		return
	}

	req := &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        c.PostForm("scope"),
		Request:      c.Request,
	}

	var grant oauth2.GrantType
	switch c.PostForm("grant_type") {
	case oauth2.PasswordCredentials.String():
		grant = oauth2.PasswordCredentials
		userID, ok := o.authenticateUser(c)
		if !ok {
			return
		}
		req.UserID = userID
	case oauth2.ClientCredentials.String():
		grant = oauth2.ClientCredentials
	default:
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType, "supported grants: password, client_credentials"))
		return
	}

	client, err := o.server.Manager.GetClient(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient, "unknown client"))
		return
	}
	if oc, ok := client.(*models.OAuthClient); ok && !oc.AllowsGrant(grant.String()) {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnauthorizedClient, "client may not use grant "+grant.String()))
		return
	}

	ti, err := o.server.Manager.GenerateAccessToken(c.Request.Context(), grant, req)
	if err != nil {
		if errors.Is(err, oauth2errors.ErrInvalidClient) {
			c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidClient, "client authentication failed"))
			return
		}
		log.WithFields(logrus.Fields{
			"client_id": clientID,
			"grant":     grant.String(),
			"error":     err.Error(),
		}).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewOAuth2Error(models.ErrServerError, "token generation failed"))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: ti.GetAccess(),
		TokenType:   "Bearer",
		ExpiresIn:   int64(ti.GetAccessExpiresIn().Seconds()),
		Scope:       ti.GetScope(),
	})
}

// authenticateUser checks the resource owner credentials of a password grant.
// It writes the error response itself and reports false on failure.
func (o *OAuthService) authenticateUser(c *gin.Context) (string, bool) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, "username and password are required"))
		return "", false
	}

	user, err := o.users.GetUserByUsername(c.Request.Context(), username)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.NewOAuth2Error(models.ErrServerError, "user lookup failed"))
		return "", false
	}
	if user == nil || !user.CheckPassword(password) {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidGrant, "invalid username or password"))
		return "", false
	}
	return strconv.FormatUint(uint64(user.ID), 10), true
}
