package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
)

// MongoConfig controls document store connectivity.
type MongoConfig struct {
	URL        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// ConnectMongo opens a client and verifies the server answers a ping within the timeout.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongo URL is empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the secondary index backing the ordered list query.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection, log zerolog.Logger) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: poster.FieldDate, Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("date_1__id_1"),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create poster date index: %w", err)
	}
	log.Info().Str("collection", coll.Name()).Msg("ensured poster indexes")
	return nil
}
