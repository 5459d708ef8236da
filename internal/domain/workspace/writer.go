package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// File is a generated (relative path, content) pair waiting to be written.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Writer materializes files under a sandboxed base directory.
type Writer struct {
	log zerolog.Logger
}

// NewWriter builds a Writer.
func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{
		log: log.With().Str("component", "file-writer").Logger(),
	}
}

// Write stores content at base/rel, creating parent directories, and returns the
// absolute path. An existing file is only replaced when overwrite is set.
func (w *Writer) Write(ctx context.Context, base, rel, content string, overwrite bool) (string, error) {
	target, err := Resolve(ctx, base, rel)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"failed to create parent directories", err, "")
	}

	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				fmt.Sprintf("file already exists: %s", rel), nil, CodeFileConflict, map[string]any{"path": rel})
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
				"failed to inspect target file", err, "")
		}
	}

	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			fmt.Sprintf("failed to write file: %s", rel), err, "")
	}

	w.log.Debug().Str("path", target).Int("bytes", len(content)).Msg("file written")
	return target, nil
}

// WriteAll writes files in order under base, prefixing each relative path with prefix.
// It stops at the first failure and returns the paths written before it alongside
// the error; earlier writes are not rolled back.
func (w *Writer) WriteAll(ctx context.Context, base, prefix string, files []File, overwrite bool) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, file := range files {
		path, err := w.Write(ctx, base, prefix+file.Path, file.Content, overwrite)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// IsFileConflict reports whether err was raised because a file exists and overwrite was off.
func IsFileConflict(err error) bool {
	platformErr := platformerrors.GetPlatformError(err)
	return platformErr != nil && platformErr.UUID == CodeFileConflict
}
