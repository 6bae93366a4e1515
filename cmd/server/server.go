package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/logger"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/observability"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver"
)

// @title Poster Collection API
// @version 1.0
// @description Poster records with vision-model date extraction
// @BasePath /
type Application struct {
	cfg        *config.Config
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(cfg *config.Config, httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		cfg:        cfg,
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the API and, when PPROF_ADDR is set, the profiling listener.
// Either one failing stops the other.
func (a *Application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Run(gctx)
	})
	if a.cfg.PprofAddr != "" {
		g.Go(func() error {
			return a.runPprof(gctx)
		})
	}
	return g.Wait()
}

func (a *Application) runPprof(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.PprofAddr,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	a.log.Info().Str("addr", srv.Addr).Msg("pprof listening")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	loadEnvFiles()

	// The logger is not configured yet, so a bad config is reported on stderr.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("connect record store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close record store")
		}
	}()

	extractor, err := newDateExtractor(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize date extractor")
	}

	posterService := poster.NewService(store, extractor, log)

	httpServer := httpserver.New(cfg, log, posterService)
	app := NewApplication(cfg, httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
		return
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
