// Package conversationres contains HTTP response DTOs for conversation endpoints.
package conversationres

import (
	"time"

	"github.com/janhq/site-agent/internal/domain/conversation"
)

// SummaryResponse is one entry of the conversation listing.
type SummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Context   *string   `json:"context,omitempty"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse is a stored message.
type MessageResponse struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp"`
}

// ConversationResponse is the full conversation document.
type ConversationResponse struct {
	SummaryResponse
	Messages []MessageResponse `json:"messages"`
}

// NewSummaryResponse creates a SummaryResponse from a conversation summary.
func NewSummaryResponse(s conversation.Summary) SummaryResponse {
	out := SummaryResponse{
		ID:        s.ID,
		Title:     s.Title,
		File:      s.File,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Context != "" {
		ctx := s.Context
		out.Context = &ctx
	}
	return out
}

// NewListResponse creates the listing body, preserving the service order.
func NewListResponse(list []conversation.Summary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewSummaryResponse(s))
	}
	return out
}

// NewConversationResponse creates a ConversationResponse from a domain conversation.
func NewConversationResponse(c *conversation.Conversation) *ConversationResponse {
	messages := make([]MessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		messages = append(messages, MessageResponse{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return &ConversationResponse{
		SummaryResponse: NewSummaryResponse(c.Summary()),
		Messages:        messages,
	}
}
