package handlers

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/janhq/site-agent/internal/domain/agent"
	"github.com/janhq/site-agent/internal/infrastructure/metrics"
	"github.com/janhq/site-agent/internal/infrastructure/observability"
)

// AgentHandler handles the chat and generate flows.
type AgentHandler struct {
	service agent.Service
}

// NewAgentHandler creates a new agent handler.
func NewAgentHandler(service agent.Service) *AgentHandler {
	return &AgentHandler{service: service}
}

// Chat runs one chat turn.
func (h *AgentHandler) Chat(ctx context.Context, in agent.ChatInput) (*agent.ChatResult, error) {
	ctx, span := observability.StartAgentSpan(ctx, "chat",
		attribute.Int("chat.messages", len(in.Messages)),
		attribute.Bool("chat.resumed", in.ConversationID != ""),
	)
	defer span.End()

	result, err := h.service.Chat(ctx, in)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("conversation.id", result.ConversationID),
		attribute.Int("files.saved", len(result.FilesSaved)),
	)
	metrics.RecordConversationOp("append", metrics.StatusLabel(nil))
	metrics.RecordFilesMaterialized("chat", len(result.FilesSaved))
	return result, nil
}

// Generate produces a project on disk.
func (h *AgentHandler) Generate(ctx context.Context, in agent.GenerateInput) (*agent.GenerateResult, error) {
	ctx, span := observability.StartAgentSpan(ctx, "generate",
		attribute.Bool("generate.overwrite", in.Overwrite),
		attribute.Bool("generate.git", in.Git),
	)
	defer span.End()

	result, err := h.service.Generate(ctx, in)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("generate.destination", result.Plan.AbsoluteDestination),
		attribute.Int("files.written", len(result.Files)),
	)
	metrics.RecordFilesMaterialized("generate", len(result.Files))
	return result, nil
}
