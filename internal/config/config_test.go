package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hichamcc/Memory-Training-Game/internal/config"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		SessionTTLMinutes: 60,
		MaxActiveSessions: 256,
	}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:              "",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		SessionTTLMinutes: 60,
		MaxActiveSessions: 256,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := config.Config{
		Addr:              ":8080",
		DBPath:            "",
		LogLevel:          "INFO",
		SessionTTLMinutes: 60,
		MaxActiveSessions: 256,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidSessionTTL(t *testing.T) {
	for _, ttl := range []int{0, -5} {
		cfg := config.Config{
			Addr:              ":8080",
			DBPath:            "test.db",
			LogLevel:          "INFO",
			SessionTTLMinutes: ttl,
			MaxActiveSessions: 256,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SESSION_TTL_MINUTES")
	}
}

func TestValidate_InvalidMaxActiveSessions(t *testing.T) {
	cfg := config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "INFO",
		SessionTTLMinutes: 60,
		MaxActiveSessions: 0,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_ACTIVE_SESSIONS")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("MAX_ACTIVE_SESSIONS", "")

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:memorytraining.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
	assert.Equal(t, 256, cfg.MaxActiveSessions)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("SESSION_TTL_MINUTES", "15")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 15, cfg.SessionTTLMinutes)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_ACTIVE_SESSIONS", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, 256, cfg.MaxActiveSessions)
}
