package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			assert.Equal(t, tt.expected, GetEnvWithDefault(tt.key, tt.defaultValue))
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")

	assert.Equal(t, 42, GetEnvAsType("TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsType("TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvAsType("TEST_UNSET_INT", 7))
	assert.True(t, GetEnvAsType("TEST_BOOL", false))
	assert.Equal(t, "42", GetEnvAsType("TEST_INT", ""))
}

// clearEnv unsets every variable LoadConfig reads for the duration of the test.
func clearEnv(t *testing.T) {
	vars := []string{
		"APP_ENV", "APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET", "DATABASE_URL",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_PATH",
		"REDIS_URL", "RATE_LIMIT_ANON_PER_MIN", "RATE_LIMIT_USER_PER_MIN",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("JWT_SECRET", "super_secret_jwt_key")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_NAME", "orders")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("RATE_LIMIT_USER_PER_MIN", "120")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres", config.Database.Driver)
		assert.Equal(t, "orders", config.Database.Name)
		assert.Equal(t, "redis://localhost:6379/0", config.RedisURL)
		assert.Equal(t, 120, config.UserRatePerMinute)
		assert.Equal(t, 20, config.AnonRatePerMinute)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with invalid database url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "not a url")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with non positive rate limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT_ANON_PER_MIN", "0")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "sqlite", config.Database.Driver)
		assert.Empty(t, config.RedisURL)
		assert.Equal(t, 60, config.UserRatePerMinute)
	})

	t.Run("string masks secrets", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "postgres://app:hunter2@db:5432/bytebistro")
		t.Setenv("JWT_SECRET", "jwt-hunter2")

		config, err := LoadConfig()
		require.NoError(t, err)

		s := config.String()
		assert.False(t, strings.Contains(s, "hunter2"), s)
		assert.Contains(t, s, "[REDACTED]")
	})
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
