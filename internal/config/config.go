package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"interview-prep"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	Redis    Redis
	Stats    Stats
	AI       AI
	CORS     CORS
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host        string `env:"PG_HOST,notEmpty"`
	Port        int    `env:"PG_PORT" envDefault:"5432"`
	User        string `env:"PG_USER,notEmpty"`
	Password    string `env:"PG_PASSWORD,notEmpty"`
	Database    string `env:"PG_DATABASE,notEmpty"`
	SSLMode     string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns    int    `env:"PG_MAX_CONNS" envDefault:"10"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// ConnString renders a libpq keyword/value DSN understood by pgx.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Redis is optional; an empty address disables the stats cache.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Stats tunes the aggregate endpoint.
type Stats struct {
	CacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s"`
}

// AI configures the Gemini question generator. An empty key means fallback only.
type AI struct {
	GeminiAPIKey string        `env:"GEMINI_API_KEY" envDefault:""`
	Model        string        `env:"GEMINI_MODEL" envDefault:"models/gemini-1.5-flash"`
	BaseURL      string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	HTTPTimeout  time.Duration `env:"AI_HTTP_TIMEOUT" envDefault:"15s"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization,X-Request-ID"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
