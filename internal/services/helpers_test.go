package services

import (
	"testing"

	"github.com/franciscosanchezn/bytebistro-api/internal/database"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory database with the full schema and
// the Manager and Delivery Crew groups provisioned.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func setupServices(t *testing.T) (*gorm.DB, RoleService) {
	t.Helper()
	db := setupTestDB(t)
	roles := NewRoleService(db)
	require.NoError(t, roles.ProvisionGroups(t.Context()))
	return db, roles
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "password123"}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)
	for _, name := range groups {
		var group models.Group
		require.NoError(t, db.Where("name = ?", name).First(&group).Error)
		require.NoError(t, db.Model(user).Association("Groups").Append(&group))
	}
	return user
}

func createMenuItem(t *testing.T, db *gorm.DB, title, price string) *models.MenuItem {
	t.Helper()
	var category models.Category
	require.NoError(t, db.Where(models.Category{Title: "Mains"}).
		Attrs(models.Category{Slug: "mains"}).FirstOrCreate(&category).Error)

	item := &models.MenuItem{Title: title, Price: decimal.RequireFromString(price), CategoryID: category.ID}
	require.NoError(t, db.Omit("Category").Create(item).Error)
	return item
}

func principal(t *testing.T, roles RoleService, user *models.User) models.Principal {
	t.Helper()
	set, err := roles.ResolveRoles(t.Context(), user.ID)
	require.NoError(t, err)
	return models.Principal{UserID: user.ID, Roles: set}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
