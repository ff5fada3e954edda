package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/franciscosanchezn/bytebistro-api/internal/config"
	"github.com/franciscosanchezn/bytebistro-api/internal/database"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/ratelimit"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T, anonRate int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Config{
		Environment: "test",
		Database: database.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "bytebistro.sqlite"),
		},
		JWTSecret:         "main-test-secret-32-characters!!",
		AnonRatePerMinute: anonRate,
		UserRatePerMinute: 100,
	}
	conn := setupDatabase(conf)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})

	app := newApplication(conf, conn, ratelimit.NewMemoryLimiter(ratelimit.Window))
	return &testServer{router: setupRouter(app), db: conn}
}

func (s *testServer) request(method, path, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login registers username, creates an API client owned by them and returns a
// password-grant access token.
func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()
	w := s.request(http.MethodPost, "/api/v1/auth/users", "",
		`{"username":"`+username+`","email":"`+username+`@bytebistro.test","password":"`+username+`-password"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, s.db.Where("username = ?", username).First(&user).Error)
	client, secret, err := services.NewClientService(s.db).CreateClient(context.Background(), user.ID, username+"-app", "")
	require.NoError(t, err)

	form := url.Values{
		"grant_type":    {"password"},
		"client_id":     {client.ID},
		"client_secret": {secret},
		"username":      {username},
		"password":      {username + "-password"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 100)

	w := s.request(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupDatabaseProvisionsAndSeeds(t *testing.T) {
	s := newTestServer(t, 100)

	var groups, items int64
	require.NoError(t, s.db.Model(&models.Group{}).Count(&groups).Error)
	require.NoError(t, s.db.Model(&models.MenuItem{}).Count(&items).Error)
	assert.EqualValues(t, 2, groups)
	assert.EqualValues(t, 4, items)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	s := newTestServer(t, 100)
	token := s.login(t, "carol")

	w := s.request(http.MethodGet, "/api/v1/menu-items?ordering=-price", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var menu []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
		Price string `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	require.Len(t, menu, 4)
	assert.Equal(t, "Lasagna", menu[0].Title)
	assert.Equal(t, "12.50", menu[0].Price)

	// Lasagna x2 + Tiramisu x1
	require.Equal(t, http.StatusCreated, s.request(http.MethodPost, "/api/v1/cart/menu-items", token, `{"menuitem":2,"quantity":2}`).Code)
	require.Equal(t, http.StatusCreated, s.request(http.MethodPost, "/api/v1/cart/menu-items", token, `{"menuitem":3,"quantity":1}`).Code)

	w = s.request(http.MethodPost, "/api/v1/orders", token, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Your order has been placed! Your order number is 1","order_id":1,"total":"30.00"}`, w.Body.String())

	w = s.request(http.MethodGet, "/api/v1/orders/1", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Customers cannot touch the catalog or staff groups.
	assert.Equal(t, http.StatusForbidden, s.request(http.MethodPost, "/api/v1/menu-items", token, `{"title":"Soup","price":"4.00","category":"Main Courses"}`).Code)
	assert.Equal(t, http.StatusForbidden, s.request(http.MethodGet, "/api/v1/groups/manager/users", token, "").Code)
	assert.Equal(t, http.StatusForbidden, s.request(http.MethodDelete, "/api/v1/orders/1", token, "").Code)
}

func TestLogoutAllRevokesTokens(t *testing.T) {
	s := newTestServer(t, 100)
	token := s.login(t, "carol")

	require.Equal(t, http.StatusOK, s.request(http.MethodGet, "/api/v1/orders", token, "").Code)

	w := s.request(http.MethodPost, "/api/v1/auth/logout-all", token, "")
	require.Equal(t, http.StatusResetContent, w.Code, w.Body.String())

	w = s.request(http.MethodGet, "/api/v1/orders", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestManagerRoutes(t *testing.T) {
	s := newTestServer(t, 100)
	token := s.login(t, "mallory")
	s.login(t, "dave")

	roles := services.NewRoleService(s.db)
	_, err := roles.GrantRole(context.Background(), models.RoleManager, "mallory")
	require.NoError(t, err)

	// Roles are resolved per request, so the existing token picks up the grant.
	w := s.request(http.MethodPost, "/api/v1/groups/delivery-crew/users", token, `{"username":"dave"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodGet, "/api/v1/groups/delivery-crew/users", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"dave"`)

	w = s.request(http.MethodGet, "/api/v1/groups/manager/users", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"mallory"`)
}

func TestPublicRoutesAreThrottled(t *testing.T) {
	s := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, s.request(http.MethodGet, "/api/v1/menu-items", "", "").Code)
	}
	w := s.request(http.MethodGet, "/api/v1/menu-items", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
