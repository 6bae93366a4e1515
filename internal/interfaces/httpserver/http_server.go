package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	posterapidocs "github.com/oshaneheath-star/Poster-collection-app/docs/swagger"
	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/handlers"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/middlewares"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/requests"
	"github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/responses"
	v1 "github.com/oshaneheath-star/Poster-collection-app/internal/interfaces/httpserver/routes/v1"
)

const readinessTimeout = 3 * time.Second

// Service is what the server needs from the poster domain.
type Service interface {
	handlers.PosterService
	Ready(ctx context.Context) error
}

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, service Service) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	posterapidocs.SwaggerInfo.BasePath = "/"
	requests.RegisterJSONFieldNames()

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.TracingMiddleware(cfg.ServiceName),
		middlewares.LoggingMiddleware(log),
		middlewares.MetricsMiddleware(),
		middlewares.CORSMiddleware(),
	)

	handlerProvider := handlers.NewProvider(service, log)
	routeProvider := v1.NewRoutes(handlerProvider)
	registerCoreRoutes(engine, cfg, routeProvider, service)

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the engine, mainly for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests within ShutdownTimeout.
func (s *HttpServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", srv.Addr).Msg("poster-api HTTP server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("shutting down HTTP server")
		drainCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(drainCtx)
	})
	return g.Wait()
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config, routes *v1.Routes, service Service) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": cfg.ServiceName, "status": "ok"})
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.StatusResponse{Status: "healthy"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := service.Ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, responses.StatusResponse{Status: "unavailable", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, responses.StatusResponse{Status: "ready"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(engine.Group("/"))
}
