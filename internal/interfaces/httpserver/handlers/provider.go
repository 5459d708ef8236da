package handlers

import (
	"github.com/google/wire"

	"github.com/janhq/site-agent/internal/domain/agent"
	"github.com/janhq/site-agent/internal/domain/conversation"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Agent        *AgentHandler
	Conversation *ConversationHandler
}

// NewProvider creates a new handler provider.
func NewProvider(agentService agent.Service, conversationService conversation.Service) *Provider {
	return &Provider{
		Agent:        NewAgentHandler(agentService),
		Conversation: NewConversationHandler(conversationService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)
