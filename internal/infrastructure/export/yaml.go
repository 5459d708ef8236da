package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/janhq/site-agent/internal/domain/conversation"
)

// YAMLExporter exports conversations in YAML format
type YAMLExporter struct{}

// Export writes the conversation as YAML
func (e *YAMLExporter) Export(c *conversation.Conversation, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(toDocument(c))
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

// ContentType returns the MIME type for this format
func (e *YAMLExporter) ContentType() string {
	return "application/yaml; charset=utf-8"
}
