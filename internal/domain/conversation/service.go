// Package conversation stores chat turns as one JSON document per conversation.
package conversation

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/site-agent/internal/utils/idgen"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

const suffixLength = 8

// Service defines the conversation store operations.
type Service interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id string) (*Conversation, error)
	Append(ctx context.Context, in AppendInput) (*Conversation, error)
	UpdateLastAgentReply(ctx context.Context, id, content string) error
	Remove(ctx context.Context, id string) error
}

// Option customizes a DefaultService.
type Option func(*DefaultService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *DefaultService) { s.now = now }
}

// WithSuffix overrides the collision suffix source.
func WithSuffix(suffix func() string) Option {
	return func(s *DefaultService) { s.suffix = suffix }
}

// DefaultService implements Service on top of a Repository.
type DefaultService struct {
	repo   Repository
	now    func() time.Time
	suffix func() string
	log    zerolog.Logger
}

// NewService creates a conversation service.
func NewService(repo Repository, log zerolog.Logger, opts ...Option) Service {
	s := &DefaultService{
		repo:   repo,
		now:    time.Now,
		suffix: func() string { return idgen.HexSuffix(suffixLength) },
		log:    log.With().Str("component", "conversation-service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every readable conversation, most recently updated first.
func (s *DefaultService) List(ctx context.Context) ([]Summary, error) {
	conversations, err := s.repo.List(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].UpdatedAt.After(conversations[j].UpdatedAt)
	})

	summaries := make([]Summary, 0, len(conversations))
	for _, c := range conversations {
		summaries = append(summaries, c.Summary())
	}
	return summaries, nil
}

// Get loads a conversation by id.
func (s *DefaultService) Get(ctx context.Context, id string) (*Conversation, error) {
	conversation, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	conversation.Title = conversation.DisplayTitle()
	return conversation, nil
}

// Append records the supplied messages plus a trailing agent reply. An existing
// document keeps its creation time, per-position message timestamps, context and
// title; a non-empty context in this call replaces both context and title.
func (s *DefaultService) Append(ctx context.Context, in AppendInput) (*Conversation, error) {
	for i, message := range in.Messages {
		if !message.Role.Valid() {
			return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
				"message role must be one of user, agent, system", nil, "conversation-role-001",
				map[string]any{"index": i, "role": string(message.Role)})
		}
	}

	now := s.now().UTC()
	title := InferTitle(in.Context, in.Messages)
	cleanContext := strings.TrimSpace(in.Context)

	index, err := s.repo.Index(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to index conversations")
	}

	titleSource := cleanContext
	if titleSource == "" {
		titleSource = title
	}
	identity := ResolveIdentity(IdentityInput{
		RequestedID: in.ID,
		Index:       index,
		TitleSource: titleSource,
		Now:         now,
		Suffix:      s.suffix,
		BaseDir:     s.repo.BaseDir(),
	})

	createdAt := now
	var previous []Message
	if identity.Existing {
		existing, err := s.repo.Find(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		if !existing.CreatedAt.IsZero() {
			createdAt = existing.CreatedAt
		}
		previous = existing.Messages
		if cleanContext == "" {
			cleanContext = strings.TrimSpace(existing.Context)
		}
		if existing.Title != "" && strings.TrimSpace(in.Context) == "" {
			title = existing.Title
		}
	} else if in.ID != "" {
		s.log.Debug().Str("requested_id", in.ID).Str("conversation_id", identity.ID).Msg("requested conversation missing, starting a new one")
	}

	messages := make([]Message, 0, len(in.Messages)+1)
	for i, message := range in.Messages {
		var timestamp *time.Time
		if i < len(previous) {
			timestamp = previous[i].Timestamp
		}
		messages = append(messages, Message{
			Role:      message.Role,
			Content:   message.Content,
			Timestamp: timestamp,
		})
	}
	replyAt := now
	messages = append(messages, Message{Role: RoleAgent, Content: in.AgentReply, Timestamp: &replyAt})

	storedContext := cleanContext
	if storedContext == "" {
		storedContext = title
	}

	conversation := &Conversation{
		ID:        identity.ID,
		Title:     title,
		Context:   storedContext,
		File:      identity.Path,
		CreatedAt: createdAt,
		UpdatedAt: now,
		Messages:  messages,
	}
	if err := s.repo.Save(ctx, conversation); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save conversation")
	}

	s.log.Info().
		Str("conversation_id", conversation.ID).
		Bool("existing", identity.Existing).
		Int("messages", len(conversation.Messages)).
		Msg("conversation turn recorded")
	return conversation, nil
}

// UpdateLastAgentReply replaces the content of the most recent agent message.
// A missing conversation is ignored.
func (s *DefaultService) UpdateLastAgentReply(ctx context.Context, id, content string) error {
	conversation, err := s.repo.Find(ctx, id)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil
		}
		return err
	}

	now := s.now().UTC()
	for i := len(conversation.Messages) - 1; i >= 0; i-- {
		if conversation.Messages[i].Role == RoleAgent {
			conversation.Messages[i].Content = content
			conversation.Messages[i].Timestamp = &now
			break
		}
	}
	conversation.UpdatedAt = now

	if err := s.repo.Save(ctx, conversation); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update conversation")
	}
	return nil
}

// Remove deletes a conversation directory and everything generated inside it.
func (s *DefaultService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("conversation_id", id).Msg("conversation removed")
	return nil
}
