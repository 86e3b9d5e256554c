package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "barberpro_db.json", cfg.Store.FilePath)
	assert.Equal(t, "strict", cfg.TransitionPolicy)
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SERVER_PORT":       "9000",
		"APP_ENV":           "production",
		"STORE_DRIVER":      "sqlite",
		"DATABASE_URL":      "file:barber.db",
		"SESSION_TTL":       "30m",
		"TRANSITION_POLICY": "permissive",
		"S3_BUCKET":         "barber-backups",
		"CORS_ORIGINS":      "https://a.com,https://b.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "file:barber.db", cfg.Store.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "permissive", cfg.TransitionPolicy)
	assert.Equal(t, "barber-backups", cfg.Blob.S3Bucket)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.CORSOrigins)
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_TTL": "soon",
	}))
	assert.Error(t, err)
}
