package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var errEmptyDSN = errors.New("postgres DSN is empty")

// PostgresConfig controls GORM/PostgreSQL connectivity.
type PostgresConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        gormlogger.LogLevel
}

func (c PostgresConfig) gormConfig() *gorm.Config {
	level := c.LogLevel
	if level == 0 {
		level = gormlogger.Warn
	}
	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Default.LogMode(level),
	}
}

func (c PostgresConfig) applyPool(pool *sql.DB) {
	if c.MaxIdleConns > 0 {
		pool.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.ConnMaxLifetime > 0 {
		pool.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
}

// ConnectPostgres opens the relational poster store, creating its database first when missing.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errEmptyDSN
	}
	if err := createDatabaseIfMissing(ctx, cfg.DSN); err != nil {
		return nil, fmt.Errorf("create postgres database: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), cfg.gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	pool, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	cfg.applyPool(pool)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func createDatabaseIfMissing(ctx context.Context, dsn string) error {
	adminDSN, name, ok := adminTarget(dsn)
	if !ok {
		return nil
	}

	admin, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return err
	}
	defer admin.Close()

	var found bool
	row := admin.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name)
	if err := row.Scan(&found); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if found {
		return nil
	}

	_, err = admin.ExecContext(ctx, "CREATE DATABASE "+quoteIdentifier(name))
	return err
}

// adminTarget returns the admin DSN and the database name for URL style DSNs.
// Keyword/value DSNs and DSNs already pointing at "postgres" are skipped.
func adminTarget(dsn string) (string, string, bool) {
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return "", "", false
	}

	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" || name == "postgres" {
		return "", "", false
	}

	admin := *parsed
	admin.Path = "/postgres"
	return admin.String(), name, true
}

func quoteIdentifier(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
