package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_USER", "interview")
	t.Setenv("PG_PASSWORD", "interview_pw")
	t.Setenv("PG_DATABASE", "interview_prep")
}

func TestLoadDefaults(t *testing.T) {
	setPostgresEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "interview-prep", cfg.Name)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTPAddr)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 30*time.Second, cfg.Stats.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.AI.GeminiAPIKey)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t,
		"host=db port=5432 user=interview password=interview_pw dbname=interview_prep sslmode=disable",
		cfg.Postgres.ConnString())
}

func TestLoadOverrides(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("AI_HTTP_TIMEOUT", "3s")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "key", cfg.AI.GeminiAPIKey)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 3*time.Second, cfg.AI.HTTPTimeout)
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_USER", "")
	t.Setenv("PG_PASSWORD", "")
	t.Setenv("PG_DATABASE", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}
