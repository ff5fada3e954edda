package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration. DatabaseURL, when set, takes precedence over the
	// discrete DB_* settings.
	DatabaseURL string                  `json:"database_url"`
	Database    database.DatabaseConfig `json:"-"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string `json:"jwt_secret"`

	// Rate limiting. An empty RedisURL keeps the counters in process memory.
	RedisURL          string `json:"redis_url"`
	AnonRatePerMinute int    `json:"anon_rate_per_minute"`
	UserRatePerMinute int    `json:"user_rate_per_minute"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DatabaseURL: %s, Database: %s, LogLevel: %s, JWTSecret: [REDACTED], RedisURL: %s, AnonRatePerMinute: %d, UserRatePerMinute: %d}",
		c.Environment, c.Port, c.Host, maskDatabaseURL(c.DatabaseURL), c.Database.String(), c.LogLevel,
		maskDatabaseURL(c.RedisURL), c.AnonRatePerMinute, c.UserRatePerMinute)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like DatabaseURL and the rate limits
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", "")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	redisURL := GetEnvWithDefault("REDIS_URL", "")
	if redisURL != "" {
		if _, err := url.ParseRequestURI(redisURL); err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL format: %w", err)
		}
	}

	anonRate := GetEnvAsType("RATE_LIMIT_ANON_PER_MIN", 20)
	userRate := GetEnvAsType("RATE_LIMIT_USER_PER_MIN", 60)
	if anonRate <= 0 || userRate <= 0 {
		return nil, fmt.Errorf("rate limits must be positive (anon=%d, user=%d)", anonRate, userRate)
	}

	config := &Config{
		Environment: GetEnvWithDefault("APP_ENV", "development"),
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "localhost"),
		DatabaseURL: dbURL,
		Database: database.DatabaseConfig{
			Driver:   GetEnvWithDefault("DB_DRIVER", "sqlite"),
			Host:     GetEnvWithDefault("DB_HOST", "localhost"),
			Port:     GetEnvWithDefault("DB_PORT", "5432"),
			User:     GetEnvWithDefault("DB_USER", "bytebistro"),
			Password: GetEnvWithDefault("DB_PASSWORD", "password"),
			Name:     GetEnvWithDefault("DB_NAME", "bytebistro"),
			SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:     GetEnvWithDefault("DB_PATH", "bytebistro.sqlite"),
			URL:      dbURL,

			MaxOpenConns:    GetEnvAsType("DB_MAX_OPEN_CONNS", database.DefaultMaxOpenConns),
			MaxIdleConns:    GetEnvAsType("DB_MAX_IDLE_CONNS", database.DefaultMaxIdleConns),
			ConnMaxLifetime: database.DefaultConnMaxLifetime,
		},
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:         GetEnvWithDefault("JWT_SECRET", "secret"),
		RedisURL:          redisURL,
		AnonRatePerMinute: anonRate,
		UserRatePerMinute: userRate,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
