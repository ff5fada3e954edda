package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/franciscosanchezn/bytebistro-api/internal/database"
	"github.com/franciscosanchezn/bytebistro-api/internal/middleware"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/policy"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testUserHeader = "X-Test-User"

type fakeRevoker struct {
	calls []string
}

func (f *fakeRevoker) RevokeUserTokens(_ context.Context, userID string) (int64, error) {
	f.calls = append(f.calls, userID)
	return 2, nil
}

type testEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	roles   services.RoleService
	revoker *fakeRevoker

	admin    *models.User
	manager  *models.User
	crew     *models.User
	customer *models.User
	outsider *models.User
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), database.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// authAs stands in for OAuth2Auth: the caller's id comes from a plain header.
func authAs(c *gin.Context) {
	if raw := c.GetHeader(testUserHeader); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			c.Set(middleware.ContextUserID, uint(id))
		}
	}
	c.Next()
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t)

	users := services.NewUserService(db)
	roles := services.NewRoleService(db)
	require.NoError(t, roles.ProvisionGroups(ctx))

	env := &testEnv{db: db, roles: roles, revoker: &fakeRevoker{}}
	env.admin = env.createUser(t, users, "alice")
	require.NoError(t, db.Model(env.admin).Update("is_superuser", true).Error)
	env.manager = env.createUser(t, users, "mallory", models.RoleManager)
	env.crew = env.createUser(t, users, "dave", models.RoleDeliveryCrew)
	env.customer = env.createUser(t, users, "carol")
	env.outsider = env.createUser(t, users, "oscar")

	menu := NewMenuController(services.NewMenuService(db), services.NewCategoryService(db))
	cart := NewCartController(services.NewCartService(db))
	orders := NewOrderController(services.NewGuardedOrderService(services.NewOrderService(db, roles)))
	groups := NewGroupController(roles)
	auth := NewAuthController(users, env.revoker)
	clients := NewClientController(services.NewClientService(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/menu-items", menu.ListMenuItems)
	api.GET("/menu-items/category", menu.ListCategories)
	api.POST("/auth/users", auth.Register)

	authed := api.Group("", authAs, middleware.LoadPrincipal(roles))
	authed.GET("/auth/users/me", auth.Me)
	authed.POST("/auth/logout-all", auth.LogoutAll)
	authed.GET("/menu-items/:id", menu.GetMenuItem)
	authed.POST("/menu-items", middleware.RequireOperation(policy.CreateMenuItem), menu.CreateMenuItem)
	authed.PUT("/menu-items/:id", middleware.RequireOperation(policy.UpdateMenuItem), menu.UpdateMenuItem)
	authed.PATCH("/menu-items/:id", middleware.RequireOperation(policy.ToggleFeatured), menu.ToggleFeatured)
	authed.DELETE("/menu-items/:id", middleware.RequireOperation(policy.DeleteMenuItem), menu.DeleteMenuItem)
	authed.POST("/menu-items/category", middleware.RequireOperation(policy.CreateCategory), menu.CreateCategory)

	authed.GET("/cart/menu-items", cart.ListCart)
	authed.POST("/cart/menu-items", cart.AddToCart)
	authed.DELETE("/cart/menu-items", cart.RemoveFromCart)

	authed.GET("/orders", orders.ListOrders)
	authed.POST("/orders", orders.PlaceOrder)
	authed.GET("/orders/:id", orders.GetOrder)
	authed.PATCH("/orders/:id", orders.ToggleDeliveryStatus)
	authed.PUT("/orders/:id", orders.AssignDeliveryCrew)
	authed.DELETE("/orders/:id", orders.DeleteOrder)

	crewGroup := authed.Group("/groups/delivery-crew/users", middleware.RequireOperation(policy.ManageGroups))
	crewGroup.GET("", groups.ListUsers(models.RoleDeliveryCrew))
	crewGroup.POST("", groups.AddUser(models.RoleDeliveryCrew))
	crewGroup.GET("/:id", groups.GetUser(models.RoleDeliveryCrew))
	crewGroup.DELETE("/:id", groups.RemoveUser(models.RoleDeliveryCrew))

	clientGroup := authed.Group("/clients", middleware.RequireOperation(policy.ManageClients))
	clientGroup.GET("", clients.ListClients)
	clientGroup.POST("", clients.CreateClient)
	clientGroup.DELETE("/:id", clients.DeleteClient)

	env.router = router
	return env
}

func (env *testEnv) createUser(t *testing.T, users services.UserService, username string, roles ...models.Role) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@bytebistro.test", Password: username + "-password"}
	require.NoError(t, users.CreateUser(context.Background(), user))
	for _, role := range roles {
		_, err := env.roles.GrantRole(context.Background(), role, username)
		require.NoError(t, err)
	}
	return user
}

// seedMenu creates "Main Courses" with Lasagna (9.50) and "Desserts" with Tiramisu (3.00).
func (env *testEnv) seedMenu(t *testing.T) (lasagna, tiramisu *models.MenuItem) {
	t.Helper()
	mains := &models.Category{Title: "Main Courses", Slug: "main-courses"}
	desserts := &models.Category{Title: "Desserts", Slug: "desserts"}
	require.NoError(t, env.db.Create(mains).Error)
	require.NoError(t, env.db.Create(desserts).Error)

	lasagna = &models.MenuItem{Title: "Lasagna", Price: decimal.RequireFromString("9.50"), CategoryID: mains.ID}
	tiramisu = &models.MenuItem{Title: "Tiramisu", Price: decimal.RequireFromString("3.00"), CategoryID: desserts.ID}
	require.NoError(t, env.db.Omit("Category").Create(lasagna).Error)
	require.NoError(t, env.db.Omit("Category").Create(tiramisu).Error)
	return lasagna, tiramisu
}

// do sends body as JSON on behalf of user (nil for anonymous).
func (env *testEnv) do(method, path string, user *models.User, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req.Header.Set(testUserHeader, strconv.FormatUint(uint64(user.ID), 10))
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// placeOrder fills the customer's cart with 2 Lasagna and 1 Tiramisu and places it.
func (env *testEnv) placeOrder(t *testing.T, customer *models.User, lasagna, tiramisu *models.MenuItem) uint {
	t.Helper()
	w := env.do(http.MethodPost, "/api/v1/cart/menu-items", customer, gin.H{"menuitem": lasagna.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = env.do(http.MethodPost, "/api/v1/cart/menu-items", customer, gin.H{"menuitem": tiramisu.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(http.MethodPost, "/api/v1/orders", customer, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[PlaceOrderResponse](t, w).OrderID
}
