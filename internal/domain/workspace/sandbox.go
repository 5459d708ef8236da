// Package workspace confines generated files to a base directory and writes them to disk.
package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// Error codes attached to PlatformErrors raised by this package.
const (
	CodePathTraversal = "path_traversal"
	CodeFileConflict  = "file_conflict"
)

// Resolve joins rel onto base and returns the canonical absolute path.
// Absolute paths, ".." segments and anything that canonicalizes outside base
// (symlinks included) fail with a conflict-typed PlatformError.
func Resolve(ctx context.Context, base, rel string) (string, error) {
	if !IsSafeRelativePath(rel) {
		return "", traversalError(ctx, rel, nil)
	}

	root, err := canonicalize(base)
	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"failed to resolve base directory", err, "")
	}

	target, err := canonicalize(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return "", traversalError(ctx, rel, err)
	}

	if !within(root, target) {
		return "", traversalError(ctx, rel, nil)
	}
	return target, nil
}

// IsSafeRelativePath reports whether p is relative and free of parent-directory segments.
// The empty path is safe and refers to the base itself.
func IsSafeRelativePath(p string) bool {
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) || filepath.VolumeName(p) != "" {
		return false
	}
	for _, segment := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if segment == ".." {
			return false
		}
	}
	return true
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// IsPathTraversal reports whether err was raised for a sandbox escape.
func IsPathTraversal(err error) bool {
	platformErr := platformerrors.GetPlatformError(err)
	return platformErr != nil && platformErr.UUID == CodePathTraversal
}

// canonicalize returns the absolute form of path with symlinks evaluated on the
// longest prefix that exists; the missing remainder is appended unchanged.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	existing := abs
	var missing []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		missing = append([]string{filepath.Base(existing)}, missing...)
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{resolved}, missing...)...), nil
}

func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

func traversalError(ctx context.Context, rel string, cause error) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
		"invalid path (path traversal detected)", cause, CodePathTraversal, map[string]any{"path": rel})
}
