package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MenuController handles HTTP requests related to menu items and categories
type MenuController interface {
	// ListMenuItems lists menu items with optional search and ordering
	ListMenuItems(c *gin.Context)
	// GetMenuItem retrieves a menu item by its ID
	GetMenuItem(c *gin.Context)
	// CreateMenuItem adds a menu item
	CreateMenuItem(c *gin.Context)
	// UpdateMenuItem changes title and/or price
	UpdateMenuItem(c *gin.Context)
	// ToggleFeatured flips the featured flag
	ToggleFeatured(c *gin.Context)
	// DeleteMenuItem removes a menu item
	DeleteMenuItem(c *gin.Context)
	// ListCategories lists categories with optional search
	ListCategories(c *gin.Context)
	// CreateCategory adds a category
	CreateCategory(c *gin.Context)
}

var errPriceRequired = errs.NewValidationError("price", "this field is required")

type menuController struct {
	menu       services.MenuService
	categories services.CategoryService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(menu services.MenuService, categories services.CategoryService) MenuController {
	return &menuController{menu: menu, categories: categories}
}

// CreateMenuItemRequest is the body of POST /menu-items.
type CreateMenuItemRequest struct {
	Title    string           `json:"title" binding:"required"`
	Price    *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	Featured bool             `json:"featured"`
	Category string           `json:"category" binding:"required" example:"Main Courses"`
}

// UpdateMenuItemRequest is the body of PUT /menu-items/{id}. At least one field is required.
type UpdateMenuItemRequest struct {
	Title *string          `json:"title"`
	Price *decimal.Decimal `json:"price" swaggertype:"string" example:"13.00"`
}

type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

// ListMenuItems godoc
// @Summary List menu items
// @Description List menu items, optionally filtered by title or category and ordered by price or category
// @Tags menu
// @Produce json
// @Param search query string false "Case insensitive match on item or category title"
// @Param ordering query string false "price, -price, category or -category"
// @Success 200 {array} MenuItemView
// @Failure 400 {object} models.APIError
// @Failure 429 {object} models.APIError
// @Router /api/v1/menu-items [get]
func (m *menuController) ListMenuItems(c *gin.Context) {
	items, err := m.menu.ListMenuItems(c.Request.Context(), services.MenuFilter{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newMenuItemView(item))
	}
	c.JSON(http.StatusOK, views)
}

// GetMenuItem godoc
// @Summary Get menu item by ID
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} MenuItemView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/menu-items/{id} [get]
func (m *menuController) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := m.menu.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMenuItemView(*item))
}

// CreateMenuItem godoc
// @Summary Create a menu item
// @Description Admin only. The category is referenced by title.
// @Tags menu
// @Accept json
// @Produce json
// @Param item body CreateMenuItemRequest true "Menu item"
// @Success 201 {object} MenuItemView
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError "Unknown category"
// @Failure 409 {object} models.APIError "Title already exists"
// @Security BearerAuth
// @Router /api/v1/menu-items [post]
func (m *menuController) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Price == nil {
		respondError(c, errPriceRequired)
		return
	}

	item, err := m.menu.CreateMenuItem(c.Request.Context(), services.MenuItemInput{
		Title:    req.Title,
		Price:    *req.Price,
		Featured: req.Featured,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMenuItemView(*item))
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Admin only. Changes title and/or price; existing cart lines and orders keep their prices.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} MenuItemView
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/menu-items/{id} [put]
func (m *menuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := m.menu.UpdateMenuItem(c.Request.Context(), id, req.Title, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMenuItemView(*item))
}

// ToggleFeatured godoc
// @Summary Toggle the featured flag
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} MenuItemView
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/menu-items/{id} [patch]
func (m *menuController) ToggleFeatured(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := m.menu.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMenuItemView(*item))
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Admin only. Items that appear in placed orders cannot be deleted.
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/menu-items/{id} [delete]
func (m *menuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := m.menu.DeleteMenuItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Menu item deleted"})
}

// ListCategories godoc
// @Summary List categories
// @Tags menu
// @Produce json
// @Param search query string false "Case insensitive match on title"
// @Success 200 {array} CategoryView
// @Router /api/v1/menu-items/category [get]
func (m *menuController) ListCategories(c *gin.Context) {
	categories, err := m.categories.ListCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}
	c.JSON(http.StatusOK, views)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags menu
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category"
// @Success 201 {object} CategoryView
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/menu-items/category [post]
func (m *menuController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := m.categories.CreateCategory(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCategoryView(*category))
}
