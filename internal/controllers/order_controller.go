package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/bytebistro-api/internal/middleware"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController exposes the order lifecycle. Authorization happens in
// the guarded service once the order is loaded.
type OrderController struct {
	orders services.GuardedOrderService
}

func NewOrderController(orders services.GuardedOrderService) *OrderController {
	return &OrderController{orders: orders}
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
	Total   string `json:"total" example:"22.00"`
}

type OrderMutationResponse struct {
	Message string    `json:"message"`
	Order   OrderView `json:"order"`
}

type AssignCrewRequest struct {
	DeliveryCrew uint `json:"delivery_crew"`
}

// ListOrders godoc
// @Summary List visible orders
// @Description Customers see their own orders, delivery crew the orders assigned to them, managers every order
// @Tags orders
// @Produce json
// @Success 200 {array} OrderView
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders [get]
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, err := oc.orders.ListOrders(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	c.JSON(http.StatusOK, views)
}

// PlaceOrder godoc
// @Summary Place an order from the cart
// @Description Converts every cart line into an order item and empties the cart in one transaction
// @Tags orders
// @Produce json
// @Success 201 {object} PlaceOrderResponse
// @Failure 400 {object} models.APIError "Cart is empty"
// @Failure 409 {object} models.APIError "Cart changed during placement"
// @Failure 500 {object} models.APIError "Transaction rolled back"
// @Security BearerAuth
// @Router /api/v1/orders [post]
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	order, err := oc.orders.PlaceOrder(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, PlaceOrderResponse{
		Message: fmt.Sprintf("Your order has been placed! Your order number is %d", order.ID),
		OrderID: order.ID,
		Total:   order.Total.StringFixed(2),
	})
}

// GetOrder godoc
// @Summary Get an order with its items
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderDetailView
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, items, err := oc.orders.GetOrderDetail(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	detail := OrderDetailView{Order: newOrderView(*order), Items: make([]OrderItemView, 0, len(items))}
	for _, item := range items {
		detail.Items = append(detail.Items, newOrderItemView(item))
	}
	c.JSON(http.StatusOK, detail)
}

// ToggleDeliveryStatus godoc
// @Summary Toggle the delivery status
// @Description Allowed for the assigned delivery crew and managers
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderMutationResponse
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [patch]
func (oc *OrderController) ToggleDeliveryStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := oc.orders.ToggleDeliveryStatus(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderMutationResponse{
		Message: fmt.Sprintf("Status of order #%d changed to %s", order.ID, order.StatusLabel()),
		Order:   newOrderView(*order),
	})
}

// AssignDeliveryCrew godoc
// @Summary Assign a delivery crew member
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param assignment body AssignCrewRequest true "Delivery crew user ID"
// @Success 200 {object} OrderMutationResponse
// @Failure 400 {object} models.APIError "User is not delivery crew"
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [put]
func (oc *OrderController) AssignDeliveryCrew(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req AssignCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := oc.orders.AssignDeliveryCrew(c.Request.Context(), middleware.PrincipalFrom(c), id, req.DeliveryCrew)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderMutationResponse{
		Message: fmt.Sprintf("User #%d was assigned to order #%d", req.DeliveryCrew, order.ID),
		Order:   newOrderView(*order),
	})
}

// DeleteOrder godoc
// @Summary Delete an order and its items
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [delete]
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := oc.orders.DeleteOrder(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Order #%d was deleted", id)})
}
