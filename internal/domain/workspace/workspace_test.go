package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestResolve_AcceptsNestedPaths(t *testing.T) {
	base := canonicalTempDir(t)

	got, err := Resolve(context.Background(), base, "src/app/main.py")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "src", "app", "main.py"), got)

	self, err := Resolve(context.Background(), base, "")
	require.NoError(t, err)
	assert.Equal(t, base, self)
}

func TestResolve_BaseMayNotExistYet(t *testing.T) {
	base := filepath.Join(canonicalTempDir(t), "later", "output")

	got, err := Resolve(context.Background(), base, "index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "index.html"), got)
}

func TestResolve_RejectsEscapes(t *testing.T) {
	base := canonicalTempDir(t)

	for _, rel := range []string{"../x", "a/../../x", "/etc/passwd", `\windows`, "a/..", `a\..\b`} {
		t.Run(rel, func(t *testing.T) {
			_, err := Resolve(context.Background(), base, rel)
			require.Error(t, err)
			assert.True(t, IsPathTraversal(err))
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
		})
	}
}

func TestResolve_RejectsSymlinkEscape(t *testing.T) {
	base := canonicalTempDir(t)
	outside := canonicalTempDir(t)
	require.NoError(t, os.Symlink(outside, filepath.Join(base, "link")))

	_, err := Resolve(context.Background(), base, "link/secret.txt")
	require.Error(t, err)
	assert.True(t, IsPathTraversal(err))
}

func TestIsSafeRelativePath(t *testing.T) {
	assert.True(t, IsSafeRelativePath("index.html"))
	assert.True(t, IsSafeRelativePath("a/b..c/d"))
	assert.False(t, IsSafeRelativePath("../index.html"))
	assert.False(t, IsSafeRelativePath("/abs"))
}

func TestWriter_WriteCreatesParents(t *testing.T) {
	base := canonicalTempDir(t)
	w := NewWriter(zerolog.Nop())

	path, err := w.Write(context.Background(), base, "site/css/style.css", "body{}", false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))
}

func TestWriter_WriteRespectsOverwrite(t *testing.T) {
	base := canonicalTempDir(t)
	w := NewWriter(zerolog.Nop())
	ctx := context.Background()

	_, err := w.Write(ctx, base, "index.html", "first", false)
	require.NoError(t, err)

	_, err = w.Write(ctx, base, "index.html", "second", false)
	require.Error(t, err)
	assert.True(t, IsFileConflict(err))
	assert.Contains(t, err.Error(), "index.html")

	data, _ := os.ReadFile(filepath.Join(base, "index.html"))
	assert.Equal(t, "first", string(data))

	_, err = w.Write(ctx, base, "index.html", "second", true)
	require.NoError(t, err)
	data, _ = os.ReadFile(filepath.Join(base, "index.html"))
	assert.Equal(t, "second", string(data))
}

func TestWriter_WriteAllPrefixesAndStopsOnFirstError(t *testing.T) {
	base := canonicalTempDir(t)
	w := NewWriter(zerolog.Nop())

	files := []File{
		{Path: "index.html", Content: "<h1>x</h1>"},
		{Path: "../escape.txt", Content: "nope"},
		{Path: "late.txt", Content: "never"},
	}

	written, err := w.WriteAll(context.Background(), base, "project/", files, false)
	require.Error(t, err)
	assert.True(t, IsPathTraversal(err))
	require.Len(t, written, 1)
	assert.Equal(t, filepath.Join(base, "project", "index.html"), written[0])

	_, statErr := os.Stat(filepath.Join(base, "project", "late.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_WriteAllEmpty(t *testing.T) {
	w := NewWriter(zerolog.Nop())

	written, err := w.WriteAll(context.Background(), canonicalTempDir(t), "p/", nil, false)
	require.NoError(t, err)
	assert.Empty(t, written)
}
