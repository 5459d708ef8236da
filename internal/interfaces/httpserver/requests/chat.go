package requests

import (
	"strings"

	"github.com/janhq/site-agent/internal/domain/agent"
	"github.com/janhq/site-agent/internal/domain/conversation"
)

// ChatMessage is one turn supplied by the client.
type ChatMessage struct {
	Role    string `json:"role" binding:"omitempty,oneof=user agent system" example:"user"`
	Content string `json:"content" binding:"notblank" example:"I want a landing page for my barbershop"`
}

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	Messages       []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	Context        *string       `json:"context,omitempty" example:"Barbershop"`
	ConversationID *string       `json:"conversation_id,omitempty"`
}

// ToInput normalizes the request into the agent chat input. Content is
// trimmed, a missing role means user and blank optional strings are dropped.
func (r *ChatRequest) ToInput() agent.ChatInput {
	messages := make([]conversation.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		role := conversation.Role(m.Role)
		if role == "" {
			role = conversation.RoleUser
		}
		messages = append(messages, conversation.Message{
			Role:    role,
			Content: strings.TrimSpace(m.Content),
		})
	}

	return agent.ChatInput{
		Messages:       messages,
		Context:        trimmedOrEmpty(r.Context),
		ConversationID: trimmedOrEmpty(r.ConversationID),
	}
}
