package conversation

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

type memoryRepository struct {
	base  string
	docs  map[string]*Conversation
	dirs  map[string]bool
	saves int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{base: "/conversations", docs: map[string]*Conversation{}, dirs: map[string]bool{}}
}

func (m *memoryRepository) BaseDir() string { return m.base }

func (m *memoryRepository) DocumentPath(id string) string {
	return filepath.Join(m.base, id, id+".json")
}

func (m *memoryRepository) Index(_ context.Context) (Index, error) {
	index := Index{Documents: map[string]bool{}, Directories: map[string]bool{}}
	for id := range m.docs {
		index.Documents[id] = true
		index.Directories[id] = true
	}
	for dir := range m.dirs {
		index.Directories[dir] = true
	}
	return index, nil
}

func (m *memoryRepository) Find(ctx context.Context, id string) (*Conversation, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("conversation %q not found", id), nil, "")
	}
	clone := *doc
	clone.Messages = append([]Message(nil), doc.Messages...)
	return &clone, nil
}

func (m *memoryRepository) Save(_ context.Context, c *Conversation) error {
	clone := *c
	clone.Messages = append([]Message(nil), c.Messages...)
	m.docs[c.ID] = &clone
	m.saves++
	return nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Conversation, error) {
	out := make([]*Conversation, 0, len(m.docs))
	for _, doc := range m.docs {
		clone := *doc
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.docs[id]; !ok && !m.dirs[id] {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("conversation %q not found", id), nil, "")
	}
	delete(m.docs, id)
	delete(m.dirs, id)
	return nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(repo Repository, clock *fakeClock) Service {
	return NewService(repo, zerolog.Nop(),
		WithClock(clock.Now),
		WithSuffix(func() string { return "deadbeef" }),
	)
}

func TestAppend_NewConversation(t *testing.T) {
	repo := newMemoryRepository()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	got, err := svc.Append(context.Background(), AppendInput{
		Messages:   []Message{{Role: RoleUser, Content: "Quero um blog de receitas"}},
		AgentReply: "Blog criado",
	})
	require.NoError(t, err)

	assert.Equal(t, "modern-blog-20240501_100000", got.ID)
	assert.Equal(t, "Modern blog", got.Title)
	assert.Equal(t, "Modern blog", got.Context)
	assert.Equal(t, repo.DocumentPath(got.ID), got.File)
	assert.Equal(t, clock.now, got.CreatedAt)
	assert.Equal(t, clock.now, got.UpdatedAt)
	require.Len(t, got.Messages, 2)
	assert.Nil(t, got.Messages[0].Timestamp)
	assert.Equal(t, RoleAgent, got.Messages[1].Role)
	assert.Equal(t, "Blog criado", got.Messages[1].Content)
	require.NotNil(t, got.Messages[1].Timestamp)
}

func TestAppend_RoundTripThroughGet(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo, &fakeClock{now: time.Now().UTC()})
	ctx := context.Background()

	input := []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "Landing page para academia"},
	}
	created, err := svc.Append(ctx, AppendInput{Messages: input, AgentReply: "ok"})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Messages, 3)
	for i, m := range input {
		assert.Equal(t, m.Role, fetched.Messages[i].Role)
		assert.Equal(t, m.Content, fetched.Messages[i].Content)
	}
	assert.Equal(t, "Tailored landing page", fetched.Title)
}

func TestAppend_ExistingKeepsCreatedAtTimestampsAndTitle(t *testing.T) {
	repo := newMemoryRepository()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)
	ctx := context.Background()

	first, err := svc.Append(ctx, AppendInput{
		Messages:   []Message{{Role: RoleUser, Content: "portfolio de fotografia"}},
		AgentReply: "primeira",
	})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := svc.Append(ctx, AppendInput{
		ID: first.ID,
		Messages: []Message{
			{Role: RoleUser, Content: "portfolio de fotografia"},
			{Role: RoleAgent, Content: "primeira"},
			{Role: RoleUser, Content: "agora um blog"},
		},
		AgentReply: "segunda",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, clock.now, second.UpdatedAt)
	assert.Equal(t, "Digital portfolio", second.Title)
	assert.Equal(t, "Digital portfolio", second.Context)
	require.Len(t, second.Messages, 4)
	assert.Nil(t, second.Messages[0].Timestamp)
	require.NotNil(t, second.Messages[1].Timestamp)
	assert.Equal(t, first.Messages[1].Timestamp.Unix(), second.Messages[1].Timestamp.Unix())
	assert.Nil(t, second.Messages[2].Timestamp)
	assert.Equal(t, "segunda", second.Messages[3].Content)
}

func TestAppend_NewContextReplacesTitle(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo, &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	first, err := svc.Append(ctx, AppendInput{
		Messages:   []Message{{Role: RoleUser, Content: "um site"}},
		AgentReply: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, "Institutional website", first.Title)

	second, err := svc.Append(ctx, AppendInput{
		ID:         first.ID,
		Context:    "Clínica veterinária",
		Messages:   []Message{{Role: RoleUser, Content: "um site"}},
		AgentReply: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Clínica veterinária", second.Title)
	assert.Equal(t, "Clínica veterinária", second.Context)
}

func TestAppend_MissingRequestedIDStartsNew(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo, &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)})

	got, err := svc.Append(context.Background(), AppendInput{
		ID:         "removed-by-hand",
		Context:    "Loja de roupas",
		Messages:   []Message{{Role: RoleUser, Content: "oi"}},
		AgentReply: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, "loja-de-roupas-20240501_100000", got.ID)
}

func TestAppend_CollisionAddsSuffix(t *testing.T) {
	repo := newMemoryRepository()
	repo.dirs["modern-blog-20240501_100000"] = true
	svc := newTestService(repo, &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)})

	got, err := svc.Append(context.Background(), AppendInput{
		Messages:   []Message{{Role: RoleUser, Content: "blog"}},
		AgentReply: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, "modern-blog-20240501_100000-deadbeef", got.ID)
}

func TestUpdateLastAgentReply(t *testing.T) {
	repo := newMemoryRepository()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)
	ctx := context.Background()

	created, err := svc.Append(ctx, AppendInput{
		Messages:   []Message{{Role: RoleUser, Content: "blog"}, {Role: RoleAgent, Content: "older"}},
		AgentReply: "draft",
	})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	require.NoError(t, svc.UpdateLastAgentReply(ctx, created.ID, "final"))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "older", got.Messages[1].Content)
	assert.Equal(t, "final", got.Messages[2].Content)
	assert.Equal(t, clock.now, *got.Messages[2].Timestamp)
	assert.Equal(t, clock.now, got.UpdatedAt)

	saves := repo.saves
	require.NoError(t, svc.UpdateLastAgentReply(ctx, "missing", "x"))
	assert.Equal(t, saves, repo.saves)
}

func TestList_SortedByUpdatedAtDesc(t *testing.T) {
	repo := newMemoryRepository()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)
	ctx := context.Background()

	older, err := svc.Append(ctx, AppendInput{Messages: []Message{{Role: RoleUser, Content: "blog"}}, AgentReply: "a"})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	newer, err := svc.Append(ctx, AppendInput{Messages: []Message{{Role: RoleUser, Content: "loja"}}, AgentReply: "b"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, 2, list[0].MessageCount)
	assert.Equal(t, newer.Title, list[0].Title)
}

func TestRemove(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo, &fakeClock{now: time.Now().UTC()})
	ctx := context.Background()

	created, err := svc.Append(ctx, AppendInput{Messages: []Message{{Role: RoleUser, Content: "blog"}}, AgentReply: "a"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	err = svc.Remove(ctx, created.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestAppend_RejectsUnknownRole(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo, &fakeClock{now: time.Now().UTC()})

	_, err := svc.Append(context.Background(), AppendInput{
		Messages:   []Message{{Role: "assistant", Content: "oi"}},
		AgentReply: "ok",
	})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Zero(t, repo.saves)
}
