package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/bytebistro-api/internal/config"
	"github.com/franciscosanchezn/bytebistro-api/internal/database"
	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	role := flag.String("role", "admin", "User role (admin, manager, crew or customer)")
	flag.Parse()

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	ctx := context.Background()
	if err := services.NewRoleService(db).ProvisionGroups(ctx); err != nil {
		log.Fatal("Failed to provision role groups:", err)
	}

	username := "dev-" + *role
	password := username + "-password"
	clientID := fmt.Sprintf("dev-%s-client", *role)
	clientSecret := fmt.Sprintf("dev-%s-secret-123", *role)

	// Check if client already exists
	var existing models.OAuthClient
	if err := db.Where("id = ?", clientID).First(&existing).Error; err == nil {
		fmt.Printf("Development client already exists for role '%s'!\n", *role)
		printUsage(clientID, clientSecret, username, password)
		return
	}

	user, err := getOrCreateUser(ctx, db, *role, username, password)
	if err != nil {
		log.Fatal("Failed to prepare user for role ", *role, ": ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	client := models.OAuthClient{
		ID:         clientID,
		Secret:     string(hash),
		Name:       fmt.Sprintf("Development %s Client", *role),
		Domain:     "http://localhost",
		UserID:     user.ID,
		Scopes:     "read write",
		GrantTypes: "password client_credentials",
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatal("Failed to create client:", err)
	}

	fmt.Printf("✓ Development OAuth client created for role '%s'!\n", *role)
	fmt.Printf("User ID: %d\n", user.ID)
	printUsage(clientID, clientSecret, username, password)
}

// getOrCreateUser finds or registers username and gives it the requested role.
func getOrCreateUser(ctx context.Context, db *gorm.DB, role, username, password string) (*models.User, error) {
	users := services.NewUserService(db)
	roles := services.NewRoleService(db)

	user, err := users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		fmt.Printf("Found existing user: %s (ID: %d)\n", user.Username, user.ID)
	case errors.Is(err, errs.ErrNotFound):
		user = &models.User{
			Username:    username,
			Email:       username + "@bytebistro.local",
			Password:    password,
			IsSuperuser: role == "admin",
		}
		if err := users.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		fmt.Printf("Created new user: %s (ID: %d)\n", user.Username, user.ID)
	default:
		return nil, err
	}

	switch role {
	case "admin", "customer":
	case "manager":
		_, err = roles.GrantRole(ctx, models.RoleManager, username)
	case "crew":
		_, err = roles.GrantRole(ctx, models.RoleDeliveryCrew, username)
	default:
		err = fmt.Errorf("unknown role %q", role)
	}
	return user, err
}

func printUsage(clientID, clientSecret, username, password string) {
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/api/v1/oauth/token \\\n")
	fmt.Printf("  -d 'grant_type=password' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s' \\\n", clientSecret)
	fmt.Printf("  -d 'username=%s' \\\n", username)
	fmt.Printf("  -d 'password=%s'\n", password)
}
