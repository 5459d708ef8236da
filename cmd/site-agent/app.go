package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/agent"
	"github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/domain/planner"
	"github.com/janhq/site-agent/internal/domain/workspace"
	"github.com/janhq/site-agent/internal/infrastructure/llmprovider"
	"github.com/janhq/site-agent/internal/infrastructure/logger"
	convrepo "github.com/janhq/site-agent/internal/infrastructure/repository/conversation"
	"github.com/janhq/site-agent/internal/infrastructure/vcs"
)

// newProvider is replaced in tests.
var newProvider = func(cfg *config.Config, log zerolog.Logger) llm.Provider {
	return llmprovider.New(cfg, log)
}

// app holds the services a command needs. Logs go to stderr so command
// output on stdout stays machine readable.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	conversations conversation.Service
	agent         agent.Service
}

func newApp() (*app, error) {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(cfg, os.Stderr)

	repo, err := convrepo.NewFileRepository(cfg.ConversationsDir, log)
	if err != nil {
		return nil, fmt.Errorf("open conversation store: %w", err)
	}
	conversations := conversation.NewService(repo, log)

	return &app{
		cfg:           cfg,
		log:           log,
		conversations: conversations,
		agent: agent.NewService(
			cfg,
			newProvider(cfg, log),
			conversations,
			planner.NewPlanner(),
			workspace.NewWriter(log),
			vcs.NewGitSnapshotter(cfg, log),
			log,
		),
	}, nil
}

func loadEnvFiles() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
		}
	}
}
