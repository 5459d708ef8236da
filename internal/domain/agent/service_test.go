package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/domain/planner"
	"github.com/janhq/site-agent/internal/domain/workspace"
	convrepo "github.com/janhq/site-agent/internal/infrastructure/repository/conversation"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

type snapshotterFunc func(ctx context.Context, dir, message string) (string, error)

func (f snapshotterFunc) CommitAll(ctx context.Context, dir, message string) (string, error) {
	return f(ctx, dir, message)
}

type fixture struct {
	svc       Service
	cfg       *config.Config
	conv      conversation.Service
	prompts   [][]llm.Message
	commits   []string
	commitDir string
}

func newFixture(t *testing.T, reply string) *fixture {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	repo, err := convrepo.NewFileRepository(filepath.Join(root, "conversations"), zerolog.Nop())
	require.NoError(t, err)

	f := &fixture{cfg: &config.Config{OutputDir: filepath.Join(root, "output")}}
	f.conv = conversation.NewService(repo, zerolog.Nop())

	provider := llm.ProviderFunc(func(_ context.Context, messages []llm.Message) (string, error) {
		f.prompts = append(f.prompts, messages)
		return reply, nil
	})
	snap := snapshotterFunc(func(_ context.Context, dir, message string) (string, error) {
		f.commits = append(f.commits, message)
		f.commitDir = dir
		return "abc123", nil
	})

	f.svc = NewService(f.cfg, provider, f.conv, planner.NewPlanner(), workspace.NewWriter(zerolog.Nop()), snap, zerolog.Nop())
	return f
}

func TestChat_PlainReplyIsRecorded(t *testing.T) {
	f := newFixture(t, "  Claro! Que tipo de site você quer?  ")

	out, err := f.svc.Chat(context.Background(), ChatInput{
		Messages: []conversation.Message{
			{Role: conversation.RoleUser, Content: "oi"},
			{Role: conversation.RoleAgent, Content: "olá"},
			{Role: conversation.RoleUser, Content: "quero um site"},
		},
		Context: "Barbearia",
	})
	require.NoError(t, err)

	assert.Equal(t, "Claro! Que tipo de site você quer?", out.Reply)
	assert.Empty(t, out.FilesSaved)
	assert.Empty(t, out.ProjectDir)
	assert.Equal(t, "Barbearia", out.Context)
	assert.FileExists(t, out.File)

	require.Len(t, f.prompts, 1)
	prompt := f.prompts[0]
	require.Len(t, prompt, 5)
	assert.Equal(t, llm.RoleSystem, prompt[0].Role)
	assert.Equal(t, "Context: Barbearia", prompt[1].Content)
	assert.Equal(t, llm.RoleAssistant, prompt[3].Role)

	stored, err := f.conv.Get(context.Background(), out.ConversationID)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 4)
	assert.Equal(t, out.Reply, stored.Messages[3].Content)
}

func TestChat_StructuredReplyWritesProjectFiles(t *testing.T) {
	reply := `{"message":"Landing pronta\nsegunda linha","slug_project":"Elite Barber","files":[` +
		`{"path":"index.html","content":"<h1>x</h1>"},` +
		`{"path":"assets/styles.css","content":"body{}"},` +
		`{"path":"../escape.txt","content":"no"}]}`
	f := newFixture(t, reply)

	out, err := f.svc.Chat(context.Background(), ChatInput{
		Messages: []conversation.Message{{Role: conversation.RoleUser, Content: "landing page para barbearia"}},
	})
	require.NoError(t, err)

	require.Len(t, out.FilesSaved, 2)
	conversationDir := filepath.Dir(out.File)
	assert.Equal(t, filepath.Join(conversationDir, "elite-barber"), out.ProjectDir)
	assert.FileExists(t, filepath.Join(out.ProjectDir, "index.html"))
	assert.FileExists(t, filepath.Join(out.ProjectDir, "assets", "styles.css"))
	assert.NoFileExists(t, filepath.Join(conversationDir, "escape.txt"))

	assert.True(t, strings.HasPrefix(out.Reply, "✨ Landing pronta"))
	assert.Contains(t, out.Reply, "• "+filepath.Join(out.ProjectDir, "index.html"))

	stored, err := f.conv.Get(context.Background(), out.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, out.Reply, stored.Messages[len(stored.Messages)-1].Content)
}

func TestChat_SlugFallsBackToSummaryFirstLine(t *testing.T) {
	f := newFixture(t, `{"message":"Portfólio Criado\nmais","files":[{"path":"index.html","content":"x"}]}`)

	out, err := f.svc.Chat(context.Background(), ChatInput{
		Messages: []conversation.Message{{Role: conversation.RoleUser, Content: "portfolio"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "portfólio-criado", filepath.Base(out.ProjectDir))
}

func TestChat_EmptyMessages(t *testing.T) {
	f := newFixture(t, "x")

	_, err := f.svc.Chat(context.Background(), ChatInput{})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestChat_ProviderErrorPropagates(t *testing.T) {
	f := newFixture(t, "")
	upstream := platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, "failed to call provider openai: boom", errors.New("boom"), "")
	f.svc = NewService(f.cfg, llm.ProviderFunc(func(context.Context, []llm.Message) (string, error) {
		return "", upstream
	}), f.conv, planner.NewPlanner(), workspace.NewWriter(zerolog.Nop()), nil, zerolog.Nop())

	_, err := f.svc.Chat(context.Background(), ChatInput{
		Messages: []conversation.Message{{Role: conversation.RoleUser, Content: "oi"}},
	})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))

	list, err := f.conv.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGenerate_WritesFilesAndSteps(t *testing.T) {
	reply := "```README.md\n# Barbearia\n```\n```src/app/main.py\nprint('hi')\n```\n```PASSOS_EXECUCAO.md\nmake run\n```"
	f := newFixture(t, reply)

	out, err := f.svc.Generate(context.Background(), GenerateInput{Objective: "  Site para Barbearia  "})
	require.NoError(t, err)

	destination := filepath.Join(f.cfg.OutputDir, "site-para-barbearia")
	assert.Equal(t, "site-para-barbearia/", out.Plan.Base)
	assert.Equal(t, destination, out.Plan.AbsoluteDestination)
	assert.Equal(t, "make run", out.Plan.ExecutionSteps)
	assert.Equal(t, []string{
		filepath.Join(destination, "README.md"),
		filepath.Join(destination, "src", "app", "main.py"),
	}, out.Files)
	assert.NoFileExists(t, filepath.Join(destination, "PASSOS_EXECUCAO.md"))
	assert.Empty(t, out.Commit)
	assert.Empty(t, f.commits)

	require.Len(t, f.prompts, 1)
	user := f.prompts[0][1].Content
	assert.Contains(t, user, "OBJECTIVE: Site para Barbearia")
	assert.Contains(t, user, "'site-para-barbearia'")
	assert.Contains(t, user, "- tests/test_saude.py")
}

func TestGenerate_ConflictWithoutOverwrite(t *testing.T) {
	f := newFixture(t, "```index.html\nnew\n```")
	ctx := context.Background()
	output := t.TempDir()

	_, err := f.svc.Generate(ctx, GenerateInput{Objective: "landing page", OutputPath: output})
	require.NoError(t, err)

	_, err = f.svc.Generate(ctx, GenerateInput{Objective: "landing page", OutputPath: output})
	require.Error(t, err)
	assert.True(t, workspace.IsFileConflict(err))
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))

	_, err = f.svc.Generate(ctx, GenerateInput{Objective: "landing page", OutputPath: output, Overwrite: true})
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(output, "landing-page", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestGenerate_CommitsWhenRequestedOrConfigured(t *testing.T) {
	f := newFixture(t, "```index.html\nx\n```")
	ctx := context.Background()

	out, err := f.svc.Generate(ctx, GenerateInput{Objective: "portfolio pessoal", Git: true})
	require.NoError(t, err)
	assert.Equal(t, "abc123", out.Commit)
	assert.Equal(t, []string{"feat: generated project - portfolio pessoal"}, f.commits)
	assert.Equal(t, out.Plan.AbsoluteDestination, f.commitDir)

	f.cfg.GitAutoCommit = true
	out, err = f.svc.Generate(ctx, GenerateInput{Objective: "portfolio pessoal", Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, "abc123", out.Commit)
	assert.Len(t, f.commits, 2)
}

func TestGenerate_ObjectiveTooShort(t *testing.T) {
	f := newFixture(t, "")

	_, err := f.svc.Generate(context.Background(), GenerateInput{Objective: "  abc  "})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Empty(t, f.prompts)
}
