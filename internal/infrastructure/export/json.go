package export

import (
	"encoding/json"
	"io"

	"github.com/janhq/site-agent/internal/domain/conversation"
)

// JSONExporter exports conversations as pretty-printed JSON
type JSONExporter struct{}

// Export writes the conversation as JSON
func (e *JSONExporter) Export(c *conversation.Conversation, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(c))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

// ContentType returns the MIME type for this format
func (e *JSONExporter) ContentType() string {
	return "application/json; charset=utf-8"
}
