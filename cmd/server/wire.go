//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/agent"
	"github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/domain/planner"
	"github.com/janhq/site-agent/internal/domain/workspace"
	"github.com/janhq/site-agent/internal/infrastructure/logger"
	convrepo "github.com/janhq/site-agent/internal/infrastructure/repository/conversation"
	"github.com/janhq/site-agent/internal/infrastructure/vcs"
	"github.com/janhq/site-agent/internal/interfaces/httpserver"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/handlers"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/routes"
)

var conversationSet = wire.NewSet(
	newConversationRepository,
	wire.Bind(new(conversation.Repository), new(*convrepo.FileRepository)),
	newConversationService,
)

var agentSet = wire.NewSet(
	newLLMProvider,
	planner.NewPlanner,
	workspace.NewWriter,
	wire.Bind(new(agent.FileWriter), new(*workspace.Writer)),
	vcs.NewGitSnapshotter,
	wire.Bind(new(agent.Snapshotter), new(*vcs.GitSnapshotter)),
	agent.NewService,
)

// BuildApplication assembles the server with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		conversationSet,
		agentSet,
		handlers.HandlerProvider,
		routes.RouteProvider,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
