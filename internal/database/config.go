package database

import (
	"fmt"
	"strings"
	"time"
)

// Pool defaults used when the corresponding DatabaseConfig field is zero.
const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 5 * time.Minute
)

// DatabaseConfig selects the driver and connection settings for the store.
// Postgres is used in production; SQLite is the local and test default.
type DatabaseConfig struct {
	Driver string // postgres, postgresql or sqlite (empty means sqlite)

	// Postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	URL      string // replaces the discrete settings when set

	// SQLite
	Path string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// IsPostgres reports whether the config targets Postgres.
func (c *DatabaseConfig) IsPostgres() bool {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return true
	}
	return false
}

// IsSQLite reports whether the config targets SQLite.
func (c *DatabaseConfig) IsSQLite() bool {
	return c.Driver == "" || strings.EqualFold(c.Driver, "sqlite")
}

// String returns a string representation with the password masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s, MaxOpenConns: %d}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path, c.pool().MaxOpenConns)
}

// DSN returns the driver specific data source name, or "" for an unknown driver.
func (c *DatabaseConfig) DSN() string {
	switch {
	case c.IsPostgres():
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case c.IsSQLite():
		return c.Path
	default:
		return ""
	}
}

// pool returns the config with zero pool settings replaced by the defaults.
func (c DatabaseConfig) pool() DatabaseConfig {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = DefaultMaxOpenConns
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = DefaultMaxIdleConns
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		c.MaxIdleConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	return c
}
