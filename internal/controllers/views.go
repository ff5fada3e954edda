package controllers

import (
	"time"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
)

// Prices are rendered as fixed two-decimal strings.

type CategoryView struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type MenuItemView struct {
	ID       uint         `json:"id"`
	Title    string       `json:"title"`
	Price    string       `json:"price" example:"12.50"`
	Featured bool         `json:"featured"`
	Category CategoryView `json:"category"`
}

type CartLineView struct {
	MenuItemID uint   `json:"menuitem_id"`
	MenuItem   string `json:"menuitem"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price" example:"9.50"`
	Price      string `json:"price" example:"19.00"`
}

type OrderView struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user"`
	DeliveryCrew *uint  `json:"delivery_crew"`
	Status       bool   `json:"status"`
	StatusLabel  string `json:"status_label" example:"placed"`
	Total        string `json:"total" example:"22.00"`
	Date         string `json:"date" example:"2024-03-01"`
}

type OrderItemView struct {
	MenuItemID uint   `json:"menuitem_id"`
	MenuItem   string `json:"menuitem"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

type OrderDetailView struct {
	Order OrderView       `json:"order"`
	Items []OrderItemView `json:"items"`
}

type UserView struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"date_joined"`
}

func newCategoryView(c models.Category) CategoryView {
	return CategoryView{ID: c.ID, Slug: c.Slug, Title: c.Title}
}

func newMenuItemView(item models.MenuItem) MenuItemView {
	return MenuItemView{
		ID:       item.ID,
		Title:    item.Title,
		Price:    item.Price.StringFixed(2),
		Featured: item.Featured,
		Category: newCategoryView(item.Category),
	}
}

func newCartLineView(line models.CartLine) CartLineView {
	return CartLineView{
		MenuItemID: line.MenuItemID,
		MenuItem:   line.MenuItem.Title,
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice.StringFixed(2),
		Price:      line.Price.StringFixed(2),
	}
}

func newOrderView(o models.Order) OrderView {
	return OrderView{
		ID:           o.ID,
		UserID:       o.UserID,
		DeliveryCrew: o.DeliveryCrewID,
		Status:       o.Status,
		StatusLabel:  o.StatusLabel(),
		Total:        o.Total.StringFixed(2),
		Date:         o.Date.Format(time.DateOnly),
	}
}

func newOrderItemView(item models.OrderItem) OrderItemView {
	return OrderItemView{
		MenuItemID: item.MenuItemID,
		MenuItem:   item.MenuItem.Title,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice.StringFixed(2),
		Price:      item.Price.StringFixed(2),
	}
}

func newUserView(u models.User) UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email, DateJoined: u.CreatedAt}
}
