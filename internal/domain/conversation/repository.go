package conversation

import "context"

// Index lists what currently exists under the conversations root.
// Documents holds ids whose directory contains a same-named JSON document;
// Directories holds every entry name, document or not.
type Index struct {
	Documents   map[string]bool
	Directories map[string]bool
}

// Repository persists conversation documents.
type Repository interface {
	BaseDir() string
	DocumentPath(id string) string
	Index(ctx context.Context) (Index, error)
	Find(ctx context.Context, id string) (*Conversation, error)
	Save(ctx context.Context, conversation *Conversation) error
	List(ctx context.Context) ([]*Conversation, error)
	Delete(ctx context.Context, id string) error
}
