package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
)

// GroupController manages membership of the Manager and Delivery Crew
// groups. Each handler is built for one role so both groups share the code.
type GroupController struct {
	roles services.RoleService
}

func NewGroupController(roles services.RoleService) *GroupController {
	return &GroupController{roles: roles}
}

type AddGroupUserRequest struct {
	Username string `json:"username"`
}

// ListUsers godoc
// @Summary List group members
// @Tags groups
// @Produce json
// @Success 200 {array} UserView
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/groups/manager/users [get]
// @Router /api/v1/groups/delivery-crew/users [get]
func (gc *GroupController) ListUsers(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := gc.roles.ListUsersInRole(c.Request.Context(), role)
		if err != nil {
			respondError(c, err)
			return
		}

		views := make([]UserView, 0, len(users))
		for _, u := range users {
			views = append(views, newUserView(u))
		}
		c.JSON(http.StatusOK, views)
	}
}

// AddUser godoc
// @Summary Add a user to the group
// @Description Adding an existing member succeeds without change
// @Tags groups
// @Accept json
// @Produce json
// @Param user body AddGroupUserRequest true "Username"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/groups/manager/users [post]
// @Router /api/v1/groups/delivery-crew/users [post]
func (gc *GroupController) AddUser(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddGroupUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		user, err := gc.roles.GrantRole(c.Request.Context(), role, req.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		group, _ := role.GroupName()
		c.JSON(http.StatusCreated, MessageResponse{Message: fmt.Sprintf("User %s added to %s group", user.Username, group)})
	}
}

// GetUser godoc
// @Summary Get a group member
// @Tags groups
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserView
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/groups/manager/users/{id} [get]
// @Router /api/v1/groups/delivery-crew/users/{id} [get]
func (gc *GroupController) GetUser(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		user, err := gc.roles.GetUserInRole(c.Request.Context(), role, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newUserView(*user))
	}
}

// RemoveUser godoc
// @Summary Remove a user from the group
// @Description The user account is kept, only the membership is removed
// @Tags groups
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/groups/manager/users/{id} [delete]
// @Router /api/v1/groups/delivery-crew/users/{id} [delete]
func (gc *GroupController) RemoveUser(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := gc.roles.RevokeRole(c.Request.Context(), role, id); err != nil {
			respondError(c, err)
			return
		}
		group, _ := role.GroupName()
		c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("User #%d removed from %s group", id, group)})
	}
}
