package httpserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/janhq/site-agent/docs/swagger"
	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/workspace"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/middlewares"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/requests"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/responses"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/routes"
)

const frontendMissingMessage = "Frontend not found. Run 'npm run build' in the frontend project " +
	"and point FRONTEND_DIST_DIR at the generated dist directory."

// HTTPServer is the HTTP server for the site agent API.
type HTTPServer struct {
	cfg       *config.Config
	engine    *gin.Engine
	log       zerolog.Logger
	routeProv *routes.Provider
}

// New creates a new HTTP server.
func New(cfg *config.Config, log zerolog.Logger, routeProvider *routes.Provider) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	requests.RegisterValidators()

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.Tracing(cfg.ServiceName))
	engine.Use(middlewares.Metrics())
	engine.Use(middlewares.CORS())
	engine.Use(middlewares.RequestLoggerWithLogger(log))

	registerCoreRoutes(engine, cfg, log)
	routeProvider.Register(engine)

	return &HTTPServer{
		cfg:       cfg,
		engine:    engine,
		log:       log,
		routeProv: routeProvider,
	}
}

// Handler exposes the underlying engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.StatusResponse{Status: "ok"})
	}
	engine.GET("/health", ok)
	engine.GET("/saude", ok)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerFrontend(engine, cfg, log)
}

// registerFrontend serves the bundled web client when FRONTEND_DIST_DIR
// points at a built dist directory. Without a configured directory the root
// path keeps the service banner.
func registerFrontend(engine *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	if cfg.FrontendDistDir == "" {
		engine.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service": cfg.ServiceName,
				"status":  "ok",
			})
		})
		return
	}

	dist := workspace.ExpandHome(cfg.FrontendDistDir)
	index := filepath.Join(dist, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.Warn().Str("dist_dir", dist).Msg("frontend build not found")
		engine.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": frontendMissingMessage})
		})
		return
	}

	if info, err := os.Stat(filepath.Join(dist, "assets")); err == nil && info.IsDir() {
		engine.Static("/assets", filepath.Join(dist, "assets"))
	}
	engine.Static("/app", dist)
	engine.GET("/", func(c *gin.Context) {
		c.File(index)
	})
	log.Info().Str("dist_dir", dist).Msg("serving frontend")
}
