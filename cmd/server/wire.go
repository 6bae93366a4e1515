//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/logger"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver"
)

var posterSet = wire.NewSet(
	provideStore,
	wire.Bind(new(poster.Repository), new(posterStore)),
	newDateExtractor,
	wire.Bind(new(poster.DateExtractor), new(*extraction.Extractor)),
	poster.NewService,
	wire.Bind(new(httpserver.Service), new(*poster.Service)),
)

// BuildApplication assembles the poster API with Wire. The cleanup func closes the record store.
func BuildApplication(ctx context.Context) (*Application, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		posterSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil, nil
}

func provideStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (posterStore, func(), error) {
	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("close record store")
		}
	}
	return store, cleanup, nil
}
