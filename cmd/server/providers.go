package main

import (
	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/infrastructure/llmprovider"
	convrepo "github.com/janhq/site-agent/internal/infrastructure/repository/conversation"
)

func newConversationRepository(cfg *config.Config, log zerolog.Logger) (*convrepo.FileRepository, error) {
	return convrepo.NewFileRepository(cfg.ConversationsDir, log)
}

func newConversationService(repo conversation.Repository, log zerolog.Logger) conversation.Service {
	return conversation.NewService(repo, log)
}

func newLLMProvider(cfg *config.Config, log zerolog.Logger) llm.Provider {
	return llmprovider.New(cfg, log)
}
