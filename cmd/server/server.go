package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/agent"
	"github.com/janhq/site-agent/internal/domain/planner"
	"github.com/janhq/site-agent/internal/domain/workspace"
	"github.com/janhq/site-agent/internal/infrastructure/logger"
	"github.com/janhq/site-agent/internal/infrastructure/observability"
	"github.com/janhq/site-agent/internal/infrastructure/vcs"
	"github.com/janhq/site-agent/internal/interfaces/httpserver"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/handlers"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/routes"
)

// @title Site Agent API
// @version 1.0
// @description Conversational agent that plans, generates and stores website projects.
// @host localhost:8090
// @BasePath /
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
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

	conversationRepository, err := newConversationRepository(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open conversation store")
	}
	conversationService := newConversationService(conversationRepository, log)

	agentService := agent.NewService(
		cfg,
		newLLMProvider(cfg, log),
		conversationService,
		planner.NewPlanner(),
		workspace.NewWriter(log),
		vcs.NewGitSnapshotter(cfg, log),
		log,
	)

	handlerProvider := handlers.NewProvider(agentService, conversationService)
	httpServer := httpserver.New(cfg, log, routes.NewProvider(handlerProvider))
	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Str("llm_provider", cfg.LLMProvider).
		Str("output_dir", cfg.OutputDir).
		Str("conversations_dir", conversationRepository.BaseDir()).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
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
