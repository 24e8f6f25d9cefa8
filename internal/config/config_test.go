package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("API_KEYS", " key-1 , ,key-2")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.IncidentCacheTTL)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown STORAGE_DRIVER")
}

func TestLoadConfig_Timezone(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SCHEDULE_TIMEZONE", "Europe/Moscow")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", cfg.Location().String())
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SCHEDULE_TIMEZONE", "Mars/Olympus")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "SCHEDULE_TIMEZONE")
}

func TestLocation_NilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, time.UTC, cfg.Location())
}
