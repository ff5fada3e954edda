package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/bytebistro-api/docs" // Register swagger docs
	"github.com/franciscosanchezn/bytebistro-api/internal/auth"
	"github.com/franciscosanchezn/bytebistro-api/internal/config"
	"github.com/franciscosanchezn/bytebistro-api/internal/controllers"
	"github.com/franciscosanchezn/bytebistro-api/internal/database"
	"github.com/franciscosanchezn/bytebistro-api/internal/middleware"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/policy"
	"github.com/franciscosanchezn/bytebistro-api/internal/ratelimit"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
)

// application holds the wired services and controllers behind the router.
type application struct {
	config  *config.Config
	db      *gorm.DB
	roles   services.RoleService
	oauth   *auth.OAuthService
	limiter ratelimit.Limiter

	menu    controllers.MenuController
	cart    *controllers.CartController
	orders  *controllers.OrderController
	groups  *controllers.GroupController
	users   *controllers.AuthController
	clients *controllers.ClientController
}

// @title ByteBistro API
// @version 1.0
// @description Restaurant ordering backend: menu, carts, orders and staff roles
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection, schema and role groups
	db = setupDatabase(configuration)

	limiter := setupRateLimiter(configuration)

	app := newApplication(configuration, db, limiter)
	router := setupRouter(app)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	if conf.Environment == "production" && conf.JWTSecret == "secret" {
		log.Warn("JWT_SECRET is using the default value")
	}
	return conf
}

// setupDatabase connects, migrates, provisions the role groups and seeds the
// menu on first start. Startup fails when the role groups cannot be verified.
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(conn))

	ctx := context.Background()
	roles := services.NewRoleService(conn)
	checkPanicErr(roles.ProvisionGroups(ctx))
	checkPanicErr(roles.VerifyGroups(ctx))

	// Seed only if the menu is empty
	var count int64
	conn.Model(&models.MenuItem{}).Count(&count)
	if count == 0 {
		log.Info("Menu is empty, seeding initial data")
		checkPanicErr(seedDatabase(ctx, conn))
	} else {
		log.Info("Menu already seeded")
	}
	return conn
}

// seedDatabase creates a starter menu through the catalog services.
func seedDatabase(ctx context.Context, conn *gorm.DB) error {
	categories := services.NewCategoryService(conn)
	menu := services.NewMenuService(conn)

	for _, title := range []string{"Main Courses", "Desserts", "Drinks"} {
		if _, err := categories.CreateCategory(ctx, title); err != nil {
			return fmt.Errorf("seed category %q: %w", title, err)
		}
	}

	items := []services.MenuItemInput{
		{Title: "Margherita", Price: decimal.RequireFromString("10.99"), Category: "Main Courses", Featured: true},
		{Title: "Lasagna", Price: decimal.RequireFromString("12.50"), Category: "Main Courses"},
		{Title: "Tiramisu", Price: decimal.RequireFromString("5.00"), Category: "Desserts"},
		{Title: "Lemonade", Price: decimal.RequireFromString("2.75"), Category: "Drinks"},
	}
	for _, item := range items {
		if _, err := menu.CreateMenuItem(ctx, item); err != nil {
			return fmt.Errorf("seed menu item %q: %w", item.Title, err)
		}
	}
	log.Info("Database seeded successfully")
	return nil
}

// setupRateLimiter shares counters through Redis when REDIS_URL is set and
// keeps them in process otherwise.
func setupRateLimiter(conf *config.Config) ratelimit.Limiter {
	if conf.RedisURL == "" {
		log.Info("REDIS_URL not set, using in-memory rate limiter")
		return ratelimit.NewMemoryLimiter(ratelimit.Window)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	limiter, err := ratelimit.NewRedisLimiter(ctx, conf.RedisURL, ratelimit.Window)
	checkPanicErr(err)
	log.Info("Using Redis rate limiter")
	return limiter
}

// newApplication wires services and controllers on top of conn.
func newApplication(conf *config.Config, conn *gorm.DB, limiter ratelimit.Limiter) *application {
	users := services.NewUserService(conn)
	roles := services.NewRoleService(conn)
	orders := services.NewGuardedOrderService(services.NewOrderService(conn, roles))

	oauth := auth.NewOAuthService(auth.NewGormTokenStore(conn), auth.NewGormClientStore(conn), users, roles, conf.JWTSecret)

	return &application{
		config:  conf,
		db:      conn,
		roles:   roles,
		oauth:   oauth,
		limiter: limiter,

		menu:    controllers.NewMenuController(services.NewMenuService(conn), services.NewCategoryService(conn)),
		cart:    controllers.NewCartController(services.NewCartService(conn)),
		orders:  controllers.NewOrderController(orders),
		groups:  controllers.NewGroupController(roles),
		users:   controllers.NewAuthController(users, oauth),
		clients: controllers.NewClientController(services.NewClientService(conn)),
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(app *application) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// Define routes
	setupRoutes(router, app)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, app *application) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler(app.db))

	throttle := middleware.RateLimit(app.limiter, app.config.AnonRatePerMinute, app.config.UserRatePerMinute)
	v1 := router.Group("/api/v1")
	{
		// Public routes, throttled by client IP
		publicApi := v1.Group("", throttle)
		{
			publicApi.POST("/oauth/token", app.oauth.HandleToken)
			publicApi.POST("/auth/users", app.users.Register)
			publicApi.GET("/menu-items", app.menu.ListMenuItems)
			publicApi.GET("/menu-items/category", app.menu.ListCategories)
		}

		// Protected routes, throttled by user
		protectedApi := v1.Group("")
		protectedApi.Use(
			middleware.OAuth2Auth([]byte(app.config.JWTSecret), app.oauth),
			throttle,
			middleware.LoadPrincipal(app.roles),
		)
		{
			protectedApi.GET("/auth/users/me", app.users.Me)
			protectedApi.POST("/auth/logout-all", app.users.LogoutAll)

			protectedApi.GET("/menu-items/:id", app.menu.GetMenuItem)
			protectedApi.POST("/menu-items", middleware.RequireOperation(policy.CreateMenuItem), app.menu.CreateMenuItem)
			protectedApi.PUT("/menu-items/:id", middleware.RequireOperation(policy.UpdateMenuItem), app.menu.UpdateMenuItem)
			protectedApi.PATCH("/menu-items/:id", middleware.RequireOperation(policy.ToggleFeatured), app.menu.ToggleFeatured)
			protectedApi.DELETE("/menu-items/:id", middleware.RequireOperation(policy.DeleteMenuItem), app.menu.DeleteMenuItem)
			protectedApi.POST("/menu-items/category", middleware.RequireOperation(policy.CreateCategory), app.menu.CreateCategory)

			protectedApi.GET("/cart/menu-items", app.cart.ListCart)
			protectedApi.POST("/cart/menu-items", app.cart.AddToCart)
			protectedApi.DELETE("/cart/menu-items", app.cart.RemoveFromCart)

			// Order-scoped checks run in the guarded order service
			protectedApi.GET("/orders", app.orders.ListOrders)
			protectedApi.POST("/orders", app.orders.PlaceOrder)
			protectedApi.GET("/orders/:id", app.orders.GetOrder)
			protectedApi.PATCH("/orders/:id", app.orders.ToggleDeliveryStatus)
			protectedApi.PUT("/orders/:id", app.orders.AssignDeliveryCrew)
			protectedApi.DELETE("/orders/:id", app.orders.DeleteOrder)

			groupsApi := protectedApi.Group("/groups", middleware.RequireOperation(policy.ManageGroups))
			{
				for path, role := range map[string]models.Role{
					"/manager/users":       models.RoleManager,
					"/delivery-crew/users": models.RoleDeliveryCrew,
				} {
					groupsApi.GET(path, app.groups.ListUsers(role))
					groupsApi.POST(path, app.groups.AddUser(role))
					groupsApi.GET(path+"/:id", app.groups.GetUser(role))
					groupsApi.DELETE(path+"/:id", app.groups.RemoveUser(role))
				}
			}

			clientsApi := protectedApi.Group("/clients", middleware.RequireOperation(policy.ManageClients))
			{
				clientsApi.GET("", app.clients.ListClients)
				clientsApi.POST("", app.clients.CreateClient)
				clientsApi.DELETE("/:id", app.clients.DeleteClient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := conn.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "bytebistro-api",
		})
	}
}
