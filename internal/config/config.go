package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	StoreBackendMongo    = "mongo"
	StoreBackendPostgres = "postgres"
)

// Config holds the environment driven configuration for the poster service.
type Config struct {
	// Service Configuration
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"poster-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"posters"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort         int           `env:"PORT" envDefault:"8001"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing    bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS" envDefault:""`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	PprofAddr        string        `env:"PPROF_ADDR" envDefault:""` // e.g. "127.0.0.1:6060"; empty disables

	// Store Backend Selection
	StoreBackend string `env:"STORE_BACKEND" envDefault:"mongo"` // Options: "mongo" or "postgres"

	// MongoDB
	MongoURL        string        `env:"MONGO_URL"`
	DBName          string        `env:"DB_NAME"`
	MongoCollection string        `env:"MONGO_COLLECTION" envDefault:"posters"`
	MongoTimeout    time.Duration `env:"MONGO_TIMEOUT" envDefault:"10s"`

	// PostgreSQL
	DBPostgresqlWriteDSN string        `env:"DB_POSTGRESQL_WRITE_DSN"`
	DBMaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime       time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Vision model used by date extraction. An empty key disables extraction.
	LLMAPIKey    string        `env:"LLM_API_KEY"`
	LLMBaseURL   string        `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel     string        `env:"LLM_MODEL" envDefault:"gpt-4o"`
	LLMTimeout   time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`
	LLMMaxTokens int           `env:"LLM_MAX_TOKENS" envDefault:"50"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.MongoURL = strings.TrimSpace(cfg.MongoURL)
	cfg.DBName = strings.TrimSpace(cfg.DBName)
	cfg.DBPostgresqlWriteDSN = strings.TrimSpace(cfg.DBPostgresqlWriteDSN)
	cfg.LLMAPIKey = strings.TrimSpace(cfg.LLMAPIKey)
	cfg.LLMBaseURL = strings.TrimRight(strings.TrimSpace(cfg.LLMBaseURL), "/")

	switch cfg.StoreBackend {
	case "", StoreBackendMongo:
		cfg.StoreBackend = StoreBackendMongo
		if cfg.MongoURL == "" {
			return nil, fmt.Errorf("MONGO_URL is required when STORE_BACKEND is %s", StoreBackendMongo)
		}
		if cfg.DBName == "" {
			return nil, fmt.Errorf("DB_NAME is required when STORE_BACKEND is %s", StoreBackendMongo)
		}
	case StoreBackendPostgres:
		if cfg.DBPostgresqlWriteDSN == "" {
			return nil, fmt.Errorf("DB_POSTGRESQL_WRITE_DSN is required when STORE_BACKEND is %s", StoreBackendPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.LLMMaxTokens <= 0 {
		cfg.LLMMaxTokens = 50
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsPostgresStore returns true if the relational backend is configured.
func (c *Config) IsPostgresStore() bool {
	return c.StoreBackend == StoreBackendPostgres
}

// DateExtractionEnabled reports whether a model credential is configured.
func (c *Config) DateExtractionEnabled() bool {
	return c.LLMAPIKey != ""
}
