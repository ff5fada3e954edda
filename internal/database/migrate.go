package database

import (
	"fmt"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Group{},
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("Database schema migrated")
	return nil
}
