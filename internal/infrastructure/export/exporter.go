// Package export renders stored conversations in portable formats.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/janhq/site-agent/internal/domain/conversation"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(c *conversation.Conversation, w io.Writer) error
	Extension() string
	ContentType() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}

// document is the serialized shape shared by the structured formats.
type document struct {
	ID        string            `json:"id" yaml:"id"`
	Title     string            `json:"title" yaml:"title"`
	Context   string            `json:"context,omitempty" yaml:"context,omitempty"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" yaml:"updated_at"`
	Messages  []documentMessage `json:"messages" yaml:"messages"`
}

type documentMessage struct {
	Role      string     `json:"role" yaml:"role"`
	Content   string     `json:"content" yaml:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

func toDocument(c *conversation.Conversation) document {
	doc := document{
		ID:        c.ID,
		Title:     c.DisplayTitle(),
		Context:   c.Context,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  make([]documentMessage, 0, len(c.Messages)),
	}
	for _, m := range c.Messages {
		doc.Messages = append(doc.Messages, documentMessage{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return doc
}
