package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	domain "github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/domain/workspace"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// FileRepository stores each conversation as {base}/{id}/{id}.json.
type FileRepository struct {
	base string
	log  zerolog.Logger
}

// NewFileRepository resolves base to an absolute path and creates it.
func NewFileRepository(base string, log zerolog.Logger) (*FileRepository, error) {
	abs, err := filepath.Abs(workspace.ExpandHome(base))
	if err != nil {
		return nil, fmt.Errorf("resolve conversations dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create conversations dir: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return &FileRepository{
		base: abs,
		log:  log.With().Str("component", "conversation-repository").Logger(),
	}, nil
}

// BaseDir returns the absolute conversations root.
func (r *FileRepository) BaseDir() string {
	return r.base
}

// DocumentPath returns where the document for id lives.
func (r *FileRepository) DocumentPath(id string) string {
	return filepath.Join(r.base, id, id+".json")
}

// Index lists the root's entries and which of them hold a document.
func (r *FileRepository) Index(ctx context.Context) (domain.Index, error) {
	index := domain.Index{Documents: map[string]bool{}, Directories: map[string]bool{}}

	entries, err := os.ReadDir(r.base)
	if err != nil {
		return index, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to read conversations directory", err, "conversation-index-001")
	}
	for _, entry := range entries {
		index.Directories[entry.Name()] = true
		if !entry.IsDir() {
			continue
		}
		if info, err := os.Stat(r.DocumentPath(entry.Name())); err == nil && info.Mode().IsRegular() {
			index.Documents[entry.Name()] = true
		}
	}
	return index, nil
}

// Find loads the document for id.
func (r *FileRepository) Find(ctx context.Context, id string) (*domain.Conversation, error) {
	dir, err := r.dir(ctx, id)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, id+".json")
	conversation, err := readDocument(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(ctx, id)
		}
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to read conversation", err, "conversation-read-001", map[string]any{"conversation_id": id})
	}
	return conversation, nil
}

// Save writes the whole document, creating its directory.
func (r *FileRepository) Save(ctx context.Context, conversation *domain.Conversation) error {
	dir, err := r.dir(ctx, conversation.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to create conversation directory", err, "conversation-save-001")
	}

	path := filepath.Join(dir, conversation.ID+".json")
	conversation.File = path

	data, err := json.MarshalIndent(conversation, "", "  ")
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to encode conversation", err, "conversation-save-002")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to write conversation", err, "conversation-save-003")
	}
	return nil
}

// List returns every parseable document; malformed ones are skipped.
func (r *FileRepository) List(ctx context.Context) ([]*domain.Conversation, error) {
	entries, err := os.ReadDir(r.base)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to read conversations directory", err, "conversation-list-001")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	conversations := make([]*domain.Conversation, 0, len(names))
	for _, name := range names {
		path := r.DocumentPath(name)
		conversation, err := readDocument(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				r.log.Warn().Err(err).Str("path", path).Msg("skipping unreadable conversation")
			}
			continue
		}
		if conversation.ID == "" {
			r.log.Warn().Str("path", path).Msg("skipping conversation without id")
			continue
		}
		conversations = append(conversations, conversation)
	}
	return conversations, nil
}

// Delete removes the conversation directory, or a stray file with that name.
func (r *FileRepository) Delete(ctx context.Context, id string) error {
	dir, err := r.dir(ctx, id)
	if err != nil {
		return err
	}

	info, err := os.Lstat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(ctx, id)
		}
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to inspect conversation", err, "conversation-delete-001")
	}

	if !info.IsDir() {
		err = os.Remove(dir)
	} else {
		err = os.RemoveAll(dir)
	}
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"failed to delete conversation", err, "conversation-delete-002")
	}
	return nil
}

// dir maps id to its directory. Ids that are not a single safe path segment
// are reported as not found.
func (r *FileRepository) dir(ctx context.Context, id string) (string, error) {
	if id == "" || id == "." || strings.ContainsAny(id, `/\`) {
		return "", notFound(ctx, id)
	}
	dir, err := workspace.Resolve(ctx, r.base, id)
	if err != nil {
		return "", notFound(ctx, id)
	}
	return dir, nil
}

func readDocument(path string) (*domain.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conversation domain.Conversation
	if err := json.Unmarshal(data, &conversation); err != nil {
		return nil, err
	}
	if conversation.File == "" {
		conversation.File = path
	}
	return &conversation, nil
}

func notFound(ctx context.Context, id string) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("conversation '%s' not found", id), nil, "conversation-not-found-001", map[string]any{"conversation_id": id})
}

var _ domain.Repository = (*FileRepository)(nil)
