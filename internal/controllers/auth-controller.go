package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/middleware"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TokenRevoker removes every stored access token of a user.
type TokenRevoker interface {
	RevokeUserTokens(ctx context.Context, userID string) (int64, error)
}

type AuthController struct {
	userService services.UserService
	revoker     TokenRevoker
}

func NewAuthController(userService services.UserService, revoker TokenRevoker) *AuthController {
	return &AuthController{
		userService: userService,
		revoker:     revoker,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

type MeResponse struct {
	UserView
	Roles []models.Role `json:"roles"`
}

// Register godoc
// @Summary Register a user
// @Description New users hold the Customer role
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account details"
// @Success 201 {object} UserView
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError "Username taken"
// @Router /api/v1/auth/users [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := ac.userService.CreateUser(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserView(*user))
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Security BearerAuth
// @Router /api/v1/auth/users/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	user, err := ac.userService.GetUserByID(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MeResponse{UserView: newUserView(*user), Roles: p.Roles.Slice()})
}

// LogoutAll godoc
// @Summary Log out from all devices
// @Description Revokes every access token issued to the caller, including the one used for this request
// @Tags auth
// @Produce json
// @Success 205 {object} MessageResponse
// @Security BearerAuth
// @Router /api/v1/auth/logout-all [post]
func (ac *AuthController) LogoutAll(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	n, err := ac.revoker.RevokeUserTokens(c.Request.Context(), strconv.FormatUint(uint64(p.UserID), 10))
	if err != nil {
		respondError(c, err)
		return
	}
	log.WithField("user_id", p.UserID).WithField("revoked", n).Debug("Logout from all devices")
	c.JSON(http.StatusResetContent, MessageResponse{Message: "Logout successful from all devices"})
}
