package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/janhq/site-agent/internal/domain/conversation"
)

// MarkdownExporter exports conversations as a readable transcript
type MarkdownExporter struct{}

// Export writes the conversation as Markdown
func (e *MarkdownExporter) Export(c *conversation.Conversation, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.DisplayTitle())
	fmt.Fprintf(&b, "**ID:** %s  \n", c.ID)
	if c.Context != "" {
		fmt.Fprintf(&b, "**Context:** %s  \n", c.Context)
	}
	fmt.Fprintf(&b, "**Created:** %s  \n", c.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Updated:** %s  \n", c.UpdatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Messages:** %d\n\n", len(c.Messages))
	b.WriteString("---\n\n")

	for i, m := range c.Messages {
		timestamp := ""
		if m.Timestamp != nil {
			timestamp = fmt.Sprintf(" (%s)", m.Timestamp.UTC().Format(time.RFC3339))
		}
		fmt.Fprintf(&b, "**%s:**%s\n\n%s\n\n", m.Role, timestamp, escapeMarkdown(m.Content))
		if i < len(c.Messages)-1 {
			b.WriteString("---\n\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// escapeMarkdown escapes emphasis markers outside fenced code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	inCodeBlock := false

	for i, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}
		line = strings.ReplaceAll(line, "**", `\*\*`)
		lines[i] = strings.ReplaceAll(line, "__", `\_\_`)
	}
	return strings.Join(lines, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

// ContentType returns the MIME type for this format
func (e *MarkdownExporter) ContentType() string {
	return "text/markdown; charset=utf-8"
}
