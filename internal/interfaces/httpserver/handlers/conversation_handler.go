package handlers

import (
	"bytes"
	"context"

	"github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/infrastructure/export"
	"github.com/janhq/site-agent/internal/infrastructure/metrics"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// ExportedConversation is a rendered conversation ready to be sent.
type ExportedConversation struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ConversationHandler handles conversation history requests.
type ConversationHandler struct {
	service conversation.Service
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(service conversation.Service) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// List returns every stored conversation, most recently updated first.
func (h *ConversationHandler) List(ctx context.Context) ([]conversation.Summary, error) {
	list, err := h.service.List(ctx)
	metrics.RecordConversationOp("list", metrics.StatusLabel(err))
	return list, err
}

// Get retrieves a conversation by ID.
func (h *ConversationHandler) Get(ctx context.Context, id string) (*conversation.Conversation, error) {
	c, err := h.service.Get(ctx, id)
	metrics.RecordConversationOp("get", metrics.StatusLabel(err))
	return c, err
}

// Delete removes a conversation and everything stored next to it.
func (h *ConversationHandler) Delete(ctx context.Context, id string) error {
	err := h.service.Remove(ctx, id)
	metrics.RecordConversationOp("delete", metrics.StatusLabel(err))
	return err
}

// Export renders a conversation in the requested format.
func (h *ConversationHandler) Export(ctx context.Context, id, format string) (*ExportedConversation, error) {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			err.Error(), err, "conversation-export-format-001")
	}

	c, err := h.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := exporter.Export(c, &buf); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeInternal,
			"failed to export conversation", err, "conversation-export-001")
	}

	return &ExportedConversation{
		Filename:    c.ID + "." + exporter.Extension(),
		ContentType: exporter.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}
