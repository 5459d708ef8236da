// Package agent orchestrates prompts, completions and file materialization for
// the chat and project-generation flows.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/conversation"
	"github.com/janhq/site-agent/internal/domain/extraction"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/domain/planner"
	"github.com/janhq/site-agent/internal/domain/workspace"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
	"github.com/janhq/site-agent/internal/utils/stringutils"
)

const (
	minObjectiveLength = 5
	projectSlugDefault = "site"
	commitMessage      = "feat: generated project - %s"
)

// FileWriter writes generated files below a base directory.
type FileWriter interface {
	WriteAll(ctx context.Context, base, prefix string, files []workspace.File, overwrite bool) ([]string, error)
}

// Snapshotter commits a directory and returns the resulting commit hash.
type Snapshotter interface {
	CommitAll(ctx context.Context, dir, message string) (string, error)
}

// ChatInput is one chat turn from the client.
type ChatInput struct {
	Messages       []conversation.Message
	Context        string
	ConversationID string
}

// ChatResult is the outcome of a chat turn.
type ChatResult struct {
	Reply          string
	ConversationID string
	File           string
	Context        string
	FilesSaved     []string
	ProjectDir     string
}

// GenerateInput describes a one-shot project generation.
type GenerateInput struct {
	Objective  string
	OutputPath string
	Overwrite  bool
	Git        bool
}

// GenerateResult is the outcome of a generation.
type GenerateResult struct {
	Plan   planner.Plan
	Files  []string
	Commit string
}

// Service runs the agent flows.
type Service interface {
	Chat(ctx context.Context, in ChatInput) (*ChatResult, error)
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
}

// DefaultService implements Service.
type DefaultService struct {
	cfg           *config.Config
	provider      llm.Provider
	conversations conversation.Service
	planner       *planner.Planner
	writer        FileWriter
	snapshotter   Snapshotter
	log           zerolog.Logger
}

// NewService creates the agent service.
func NewService(
	cfg *config.Config,
	provider llm.Provider,
	conversations conversation.Service,
	plan *planner.Planner,
	writer FileWriter,
	snapshotter Snapshotter,
	log zerolog.Logger,
) Service {
	return &DefaultService{
		cfg:           cfg,
		provider:      provider,
		conversations: conversations,
		planner:       plan,
		writer:        writer,
		snapshotter:   snapshotter,
		log:           log.With().Str("component", "agent-service").Logger(),
	}
}

// Chat sends the conversation to the model, records the turn and, when the
// model returned files, writes them into a project folder next to the
// conversation document.
func (s *DefaultService) Chat(ctx context.Context, in ChatInput) (*ChatResult, error) {
	if len(in.Messages) == 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"messages must not be empty", nil, "agent-chat-validation-001")
	}

	contextText := strings.TrimSpace(in.Context)
	prompt := make([]llm.Message, 0, len(in.Messages))
	for _, m := range in.Messages {
		prompt = append(prompt, llm.Message{Role: llmRole(m.Role), Content: m.Content})
	}

	raw, err := s.provider.Chat(ctx, chatPrompt(contextText, prompt))
	if err != nil {
		return nil, err
	}

	result := extraction.Extract(raw)
	summary := result.Message
	if result.Kind == extraction.KindFenced && len(result.Files) == 0 {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			summary = trimmed
		}
	}

	record, err := s.conversations.Append(ctx, conversation.AppendInput{
		Messages:   in.Messages,
		AgentReply: summary,
		ID:         in.ConversationID,
		Context:    in.Context,
	})
	if err != nil {
		return nil, err
	}

	out := &ChatResult{
		Reply:          summary,
		ConversationID: record.ID,
		File:           record.File,
		Context:        record.Context,
		FilesSaved:     []string{},
	}
	if len(result.Files) == 0 {
		return out, nil
	}

	slugSource := result.ProjectSlug
	if slugSource == "" {
		slugSource, _, _ = strings.Cut(summary, "\n")
	}
	slug := stringutils.Slugify(slugSource, projectSlugDefault)
	conversationDir := record.Dir()

	saved, err := s.writer.WriteAll(ctx, conversationDir, slug+"/", result.Files, true)
	if err != nil {
		return nil, err
	}
	projectDir, err := workspace.Resolve(ctx, conversationDir, slug)
	if err != nil {
		return nil, err
	}

	out.FilesSaved = saved
	out.ProjectDir = projectDir
	out.Reply = decorateReply(summary, projectDir, saved)

	if err := s.conversations.UpdateLastAgentReply(ctx, record.ID, out.Reply); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("conversation_id", record.ID).
		Str("project_dir", projectDir).
		Int("files", len(saved)).
		Msg("chat files saved")
	return out, nil
}

// Generate plans a project, asks the model for every scaffold file, writes the
// files under the output root and optionally commits them.
func (s *DefaultService) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	objective := strings.TrimSpace(in.Objective)
	if len([]rune(objective)) < minObjectiveLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("objective must have at least %d characters", minObjectiveLength), nil, "agent-generate-validation-001")
	}

	plan := s.planner.Plan(objective)
	base := plan.Base
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}

	raw, err := s.provider.Chat(ctx, generationPrompt(objective, plan.Files, base))
	if err != nil {
		return nil, err
	}
	result := extraction.Extract(raw)

	outputRoot := in.OutputPath
	if strings.TrimSpace(outputRoot) == "" {
		outputRoot = s.cfg.OutputDir
	}
	outputRoot = workspace.ExpandHome(outputRoot)

	written, err := s.writer.WriteAll(ctx, outputRoot, base, result.Files, in.Overwrite)
	if err != nil {
		return nil, err
	}

	destination, err := workspace.Resolve(ctx, outputRoot, base)
	if err != nil {
		return nil, err
	}

	out := &GenerateResult{Files: written}
	if in.Git || s.cfg.GitAutoCommit {
		hash, err := s.snapshotter.CommitAll(ctx, destination, fmt.Sprintf(commitMessage, objective))
		if err != nil {
			return nil, err
		}
		out.Commit = hash
	}

	plan.Base = base
	plan.ExecutionSteps = result.ExecutionSteps
	plan.AbsoluteDestination = destination
	out.Plan = plan

	s.log.Info().
		Str("destination", destination).
		Int("files", len(written)).
		Bool("committed", out.Commit != "").
		Msg("project generated")
	return out, nil
}

func llmRole(role conversation.Role) string {
	switch role {
	case conversation.RoleAgent:
		return llm.RoleAssistant
	case conversation.RoleSystem:
		return llm.RoleSystem
	default:
		return llm.RoleUser
	}
}

func decorateReply(summary, projectDir string, saved []string) string {
	list := make([]string, 0, len(saved))
	for _, path := range saved {
		list = append(list, "• "+path)
	}
	blocks := []string{
		"✨ " + summary,
		"📁 Project folder: " + projectDir,
		"🧩 Saved files:",
		strings.Join(list, "\n"),
		"🚀 Open index.html to check the result and ask for adjustments whenever you like.",
	}
	return strings.Join(blocks, "\n\n")
}
