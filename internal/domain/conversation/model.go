package conversation

import (
	"time"
)

// ===============================================
// Conversation Types
// ===============================================

// Role identifies who authored a stored message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// Valid reports whether r is one of the stored roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAgent || r == RoleSystem
}

// DefaultTitle is used when no title can be inferred.
const DefaultTitle = "New conversation"

// ===============================================
// Conversation Structure
// ===============================================

// Message is a stored turn. Timestamp is nil for messages supplied by the client
// that had no counterpart in a previous version of the document.
type Message struct {
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp"`
}

// Conversation is the persisted document, one per conversation directory.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Context   string    `json:"context,omitempty"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  []Message `json:"messages"`
}

// Summary is the listing view of a conversation.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Context   string    `json:"context,omitempty"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MessageCount int `json:"message_count"`
}

// DisplayTitle returns the title, or the id when the title is blank.
func (c *Conversation) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}

// Summary projects the conversation to its listing view.
func (c *Conversation) Summary() Summary {
	return Summary{
		ID:        c.ID,
		Title:     c.DisplayTitle(),
		Context:   c.Context,
		File:      c.File,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,

		MessageCount: len(c.Messages),
	}
}

// Dir returns the directory holding the conversation document.
func (c *Conversation) Dir() string {
	return dirOf(c.File)
}

// AppendInput carries one chat turn to be recorded.
type AppendInput struct {
	Messages   []Message
	AgentReply string
	ID         string
	Context    string
}
