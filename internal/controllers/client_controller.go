package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/bytebistro-api/internal/middleware"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

type CreateClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
}

type ClientView struct {
	ClientID   string    `json:"client_id"`
	Name       string    `json:"name"`
	Domain     string    `json:"domain"`
	Scopes     string    `json:"scopes"`
	GrantTypes string    `json:"grant_types"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatedClientResponse carries the plain secret, which is shown only once.
type CreatedClientResponse struct {
	ClientView
	ClientSecret string `json:"client_secret"`
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client for API access. Tokens issued through client_credentials act as the creating user.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client details"
// @Success 201 {object} CreatedClientResponse "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError "Invalid request"
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	client, secret, err := cc.clientService.CreateClient(c.Request.Context(), p.UserID, req.Name, req.Domain)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedClientResponse{
		ClientView: ClientView{
			ClientID:   client.ID,
			Name:       client.Name,
			Domain:     client.Domain,
			Scopes:     client.Scopes,
			GrantTypes: client.GrantTypes,
			CreatedAt:  client.CreatedAt,
		},
		ClientSecret: secret,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} ClientView "List of clients"
// @Security BearerAuth
// @Router /api/v1/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]ClientView, 0, len(clients))
	for _, client := range clients {
		views = append(views, ClientView{
			ClientID:   client.ID,
			Name:       client.Name,
			Domain:     client.Domain,
			Scopes:     client.Scopes,
			GrantTypes: client.GrantTypes,
			CreatedAt:  client.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, views)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError "Client not found"
// @Security BearerAuth
// @Router /api/v1/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), p.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
