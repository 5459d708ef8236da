package conversation

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

func newRepo(t *testing.T) *FileRepository {
	t.Helper()
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "conversations"), zerolog.Nop())
	require.NoError(t, err)
	return repo
}

func sample(id string, updated time.Time) *domain.Conversation {
	ts := updated
	return &domain.Conversation{
		ID:        id,
		Title:     "Modern blog",
		Context:   "Modern blog",
		CreatedAt: updated,
		UpdatedAt: updated,
		Messages: []domain.Message{
			{Role: domain.RoleUser, Content: "blog"},
			{Role: domain.RoleAgent, Content: "ok", Timestamp: &ts},
		},
	}
}

func TestFileRepository_SaveFindRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, sample("blog-1", now)))

	got, err := repo.Find(ctx, "blog-1")
	require.NoError(t, err)
	assert.Equal(t, "blog-1", got.ID)
	assert.Equal(t, repo.DocumentPath("blog-1"), got.File)
	assert.True(t, now.Equal(got.UpdatedAt))
	require.Len(t, got.Messages, 2)
	assert.Nil(t, got.Messages[0].Timestamp)
	assert.Equal(t, domain.RoleAgent, got.Messages[1].Role)

	raw, err := os.ReadFile(repo.DocumentPath("blog-1"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"id\": \"blog-1\"")
}

func TestFileRepository_FindMissingAndInvalidIDs(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, id := range []string{"missing", "", "..", "../etc", "a/b"} {
		_, err := repo.Find(ctx, id)
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound), id)
	}
}

func TestFileRepository_IndexAndList(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, sample("a", now)))
	require.NoError(t, repo.Save(ctx, sample("b", now.Add(time.Minute))))
	require.NoError(t, os.MkdirAll(filepath.Join(repo.BaseDir(), "empty-dir"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(repo.BaseDir(), "broken"), 0o755))
	require.NoError(t, os.WriteFile(repo.DocumentPath("broken"), []byte("{not json"), 0o644))

	index, err := repo.Index(ctx)
	require.NoError(t, err)
	assert.True(t, index.Documents["a"])
	assert.True(t, index.Documents["broken"])
	assert.False(t, index.Documents["empty-dir"])
	assert.True(t, index.Directories["empty-dir"])

	list, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestFileRepository_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sample("gone", time.Now().UTC())))
	require.NoError(t, os.WriteFile(filepath.Join(repo.BaseDir(), "gone", "index.html"), []byte("x"), 0o644))

	require.NoError(t, repo.Delete(ctx, "gone"))
	_, err := os.Stat(filepath.Join(repo.BaseDir(), "gone"))
	assert.True(t, os.IsNotExist(err))

	err = repo.Delete(ctx, "gone")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	require.NoError(t, os.WriteFile(filepath.Join(repo.BaseDir(), "stray"), []byte("x"), 0o644))
	require.NoError(t, repo.Delete(ctx, "stray"))
}

func TestFileRepository_WithConversationService(t *testing.T) {
	repo := newRepo(t)
	svc := domain.NewService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Append(ctx, domain.AppendInput{
		Messages:   []domain.Message{{Role: domain.RoleUser, Content: "Quero um site para minha barbearia"}},
		AgentReply: "pronto",
	})
	require.NoError(t, err)
	assert.FileExists(t, created.File)
	assert.Equal(t, filepath.Dir(created.File), created.Dir())

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quero um site para minha barbearia", fetched.Messages[0].Content)

	require.NoError(t, svc.Remove(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
