package controllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartLifecycle(t *testing.T) {
	env := newTestEnv(t)
	lasagna, tiramisu := env.seedMenu(t)
	path := "/api/v1/cart/menu-items"

	w := env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": lasagna.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": tiramisu.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(http.MethodGet, path, env.customer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	lines := decode[[]CartLineView](t, w)
	require.Len(t, lines, 2)
	assert.Equal(t, "Lasagna", lines[0].MenuItem)
	assert.Equal(t, "9.50", lines[0].UnitPrice)
	assert.Equal(t, "19.00", lines[0].Price)

	// Other users see their own, empty, cart.
	w = env.do(http.MethodGet, path, env.outsider, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.do(http.MethodDelete, path, env.customer, gin.H{"menuitem": lasagna.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Item removed from cart", decode[MessageResponse](t, w).Message)
	assert.Len(t, decode[[]CartLineView](t, env.do(http.MethodGet, path, env.customer, nil)), 1)

	w = env.do(http.MethodDelete, path, env.customer, gin.H{"menuitem": lasagna.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, path, env.customer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All items removed from cart", decode[MessageResponse](t, w).Message)
	assert.JSONEq(t, `[]`, env.do(http.MethodGet, path, env.customer, nil).Body.String())

	// Clearing an empty cart still succeeds.
	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, path, env.customer, nil).Code)
}

func TestRemoveFromCartByQuery(t *testing.T) {
	env := newTestEnv(t)
	lasagna, tiramisu := env.seedMenu(t)
	path := "/api/v1/cart/menu-items"

	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": lasagna.ID, "quantity": 1}).Code)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": tiramisu.ID, "quantity": 1}).Code)

	w := env.do(http.MethodDelete, path+"?menuitem=2", env.customer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	lines := decode[[]CartLineView](t, env.do(http.MethodGet, path, env.customer, nil))
	require.Len(t, lines, 1)
	assert.Equal(t, lasagna.ID, lines[0].MenuItemID)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodDelete, path+"?menuitem=abc", env.customer, nil).Code)
}

func TestRemoveFromCartChunkedBody(t *testing.T) {
	env := newTestEnv(t)
	lasagna, tiramisu := env.seedMenu(t)
	path := "/api/v1/cart/menu-items"

	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": lasagna.ID, "quantity": 1}).Code)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": tiramisu.ID, "quantity": 1}).Code)

	req := httptest.NewRequest(http.MethodDelete, path, strings.NewReader(`{"menuitem":`+strconv.FormatUint(uint64(lasagna.ID), 10)+`}`))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(testUserHeader, strconv.FormatUint(uint64(env.customer.ID), 10))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Item removed from cart", decode[MessageResponse](t, w).Message)
	lines := decode[[]CartLineView](t, env.do(http.MethodGet, path, env.customer, nil))
	require.Len(t, lines, 1)
	assert.Equal(t, tiramisu.ID, lines[0].MenuItemID)
}

func TestRemoveFromCartInvalidMenuItemKeepsCart(t *testing.T) {
	env := newTestEnv(t)
	lasagna, _ := env.seedMenu(t)
	path := "/api/v1/cart/menu-items"
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": lasagna.ID, "quantity": 1}).Code)

	testCases := []struct {
		name string
		path string
		body any
		code string
	}{
		{"zero in body", path, gin.H{"menuitem": 0}, models.ErrValidationFailed},
		{"negative in body", path, gin.H{"menuitem": -1}, models.ErrBadRequest},
		{"string in body", path, gin.H{"menuitem": "lasagna"}, models.ErrBadRequest},
		{"zero in query", path + "?menuitem=0", nil, models.ErrValidationFailed},
		{"empty query value", path + "?menuitem=", nil, models.ErrValidationFailed},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodDelete, tt.path, env.customer, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decode[models.APIError](t, w).Code)
			assert.Len(t, decode[[]CartLineView](t, env.do(http.MethodGet, path, env.customer, nil)), 1)
		})
	}
}

func TestAddToCartErrors(t *testing.T) {
	env := newTestEnv(t)
	lasagna, _ := env.seedMenu(t)
	path := "/api/v1/cart/menu-items"
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.customer, gin.H{"menuitem": lasagna.ID, "quantity": 1}).Code)

	testCases := []struct {
		name   string
		body   gin.H
		status int
		code   string
	}{
		{"zero quantity", gin.H{"menuitem": lasagna.ID, "quantity": 0}, http.StatusBadRequest, models.ErrValidationFailed},
		{"negative quantity", gin.H{"menuitem": lasagna.ID, "quantity": -1}, http.StatusBadRequest, models.ErrValidationFailed},
		{"missing menu item", gin.H{"quantity": 1}, http.StatusBadRequest, models.ErrValidationFailed},
		{"unknown menu item", gin.H{"menuitem": 99, "quantity": 1}, http.StatusNotFound, models.ErrNotFound},
		{"already in cart", gin.H{"menuitem": lasagna.ID, "quantity": 3}, http.StatusConflict, models.ErrConflict},
		{"malformed quantity", gin.H{"menuitem": lasagna.ID, "quantity": "two"}, http.StatusBadRequest, models.ErrBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, path, env.customer, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decode[models.APIError](t, w).Code)
		})
	}
}
