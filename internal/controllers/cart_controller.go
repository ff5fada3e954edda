package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/middleware"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart services.CartService
}

func NewCartController(cart services.CartService) *CartController {
	return &CartController{cart: cart}
}

type AddToCartRequest struct {
	MenuItem uint `json:"menuitem"`
	Quantity int  `json:"quantity"`
}

// RemoveFromCartRequest removes one line when MenuItem is present and clears
// the cart when it is absent.
type RemoveFromCartRequest struct {
	MenuItem *uint `json:"menuitem"`
}

var errInvalidMenuItem = errs.NewValidationError("menuitem", "must be a positive integer")

// ListCart godoc
// @Summary List the caller's cart
// @Tags cart
// @Produce json
// @Success 200 {array} CartLineView
// @Security BearerAuth
// @Router /api/v1/cart/menu-items [get]
func (cc *CartController) ListCart(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	lines, err := cc.cart.ListCart(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, newCartLineView(line))
	}
	c.JSON(http.StatusOK, views)
}

// AddToCart godoc
// @Summary Add a menu item to the cart
// @Description The menu item's current price is captured on the line
// @Tags cart
// @Accept json
// @Produce json
// @Param line body AddToCartRequest true "Menu item and quantity"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError "Item already in cart"
// @Security BearerAuth
// @Router /api/v1/cart/menu-items [post]
func (cc *CartController) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p := middleware.PrincipalFrom(c)
	if _, err := cc.cart.AddLine(c.Request.Context(), p.UserID, req.MenuItem, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Item added to cart"})
}

// RemoveFromCart godoc
// @Summary Remove one line or clear the cart
// @Description With menuitem (body or query) removes that line, without it removes every line
// @Tags cart
// @Accept json
// @Produce json
// @Param line body RemoveFromCartRequest false "Line to remove"
// @Param menuitem query int false "Line to remove"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/cart/menu-items [delete]
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	var req RemoveFromCartRequest
	// ContentLength is -1 for chunked bodies.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	if raw, ok := c.GetQuery("menuitem"); ok && req.MenuItem == nil {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, errInvalidMenuItem)
			return
		}
		menuItem := uint(id)
		req.MenuItem = &menuItem
	}
	if req.MenuItem != nil && *req.MenuItem == 0 {
		respondError(c, errInvalidMenuItem)
		return
	}

	p := middleware.PrincipalFrom(c)
	if req.MenuItem == nil {
		if err := cc.cart.ClearCart(c.Request.Context(), p.UserID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "All items removed from cart"})
		return
	}

	if err := cc.cart.RemoveLine(c.Request.Context(), p.UserID, *req.MenuItem); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Item removed from cart"})
}
