package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/infrastructure/metrics"
	"github.com/janhq/site-agent/internal/infrastructure/observability"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// New returns the provider named by cfg.LLMProvider wrapped with metrics,
// tracing and logging. An unknown name yields a provider that fails every call
// with a configuration error.
func New(cfg *config.Config, log zerolog.Logger) llm.Provider {
	var provider llm.Provider
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		provider = NewOpenAIClient(cfg)
	case config.ProviderHuggingFace:
		provider = NewHuggingFaceClient(cfg)
	default:
		provider = unsupported{name: cfg.LLMProvider}
	}
	sanitizer := observability.NewSanitizer(observability.PIILevel(cfg.LLMLogContent), cfg.ServiceName)
	return Instrument(provider, sanitizer, log)
}

type unsupported struct {
	name string
}

func (u unsupported) Name() string { return u.name }

func (u unsupported) Chat(ctx context.Context, _ []llm.Message) (string, error) {
	return "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeConfiguration,
		"invalid LLM_PROVIDER, use 'openai' or 'huggingface'", nil, "llm-provider-config-001",
		map[string]any{"provider": u.name})
}

const previewLimit = 200

type instrumented struct {
	next      llm.Provider
	sanitizer *observability.Sanitizer
	log       zerolog.Logger
}

// Instrument decorates a provider with metrics, a client span and a log line
// per call. Prompt and response previews pass through sanitizer first.
func Instrument(next llm.Provider, sanitizer *observability.Sanitizer, log zerolog.Logger) llm.Provider {
	return &instrumented{
		next:      next,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "llm-provider").Str("provider", next.Name()).Logger(),
	}
}

func (p *instrumented) Name() string { return p.next.Name() }

func (p *instrumented) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	ctx, span := observability.StartLLMSpan(ctx, p.next.Name(), len(messages))
	defer span.End()

	start := time.Now()
	content, err := p.next.Chat(ctx, messages)
	elapsed := time.Since(start)

	metrics.RecordLLMCall(p.next.Name(), metrics.StatusLabel(err), elapsed.Seconds())
	if err != nil {
		observability.RecordError(span, err)
		p.log.Error().Err(err).Dur("duration", elapsed).Msg("LLM call failed")
		return "", err
	}

	response := p.sanitizer.Preview(content, previewLimit)
	span.SetAttributes(attribute.String("llm.response.preview", response))
	p.log.Debug().
		Dur("duration", elapsed).
		Int("response_chars", len(content)).
		Str("prompt", p.sanitizer.Preview(lastUserContent(messages), previewLimit)).
		Str("response", response).
		Msg("LLM call completed")
	return content, nil
}

func lastUserContent(messages []llm.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == llm.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

func upstreamError(ctx context.Context, provider, detail string, cause error) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
		fmt.Sprintf("failed to call provider %s: %s", provider, detail), cause, "llm-upstream-001",
		map[string]any{"provider": provider})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
