package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/database"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/llmprovider"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/repository/posterrepo"
)

// posterStore is a repository that owns its connection.
type posterStore interface {
	poster.Repository
	Close(ctx context.Context) error
}

// openStore connects the configured record store and prepares its schema.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (posterStore, error) {
	if cfg.IsPostgresStore() {
		db, err := database.ConnectPostgres(ctx, database.PostgresConfig{
			DSN:             cfg.DBPostgresqlWriteDSN,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			ConnMaxLifetime: cfg.DBConnLifetime,
			LogLevel:        gormlogger.Warn,
		})
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(ctx, db, log); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		log.Info().Str("backend", cfg.StoreBackend).Msg("record store ready")
		return posterrepo.NewGormRepository(db), nil
	}

	client, err := database.ConnectMongo(ctx, database.MongoConfig{
		URL:        cfg.MongoURL,
		Database:   cfg.DBName,
		Collection: cfg.MongoCollection,
		Timeout:    cfg.MongoTimeout,
	})
	if err != nil {
		return nil, err
	}
	coll := client.Database(cfg.DBName).Collection(cfg.MongoCollection)
	if err := database.EnsureIndexes(ctx, coll, log); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("backend", cfg.StoreBackend).Str("database", cfg.DBName).Msg("record store ready")
	return posterrepo.NewMongoRepository(coll), nil
}

// newDateExtractor wires the vision model when a credential is configured.
// Without one, extraction answers "not configured" instead of failing startup.
func newDateExtractor(cfg *config.Config, log zerolog.Logger) (*extraction.Extractor, error) {
	if !cfg.DateExtractionEnabled() {
		log.Warn().Msg("LLM_API_KEY not set, date extraction disabled")
		return extraction.NewExtractor(nil, log), nil
	}

	client, err := llmprovider.NewClient(llmprovider.OptionsFromConfig(cfg), log)
	if err != nil {
		return nil, err
	}
	return extraction.NewExtractor(client, log), nil
}
