package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// OpenAIClient calls an OpenAI compatible /chat/completions endpoint.
type OpenAIClient struct {
	httpClient  *resty.Client
	apiKey      string
	model       string
	temperature float32
}

// NewOpenAIClient creates a Resty-backed OpenAI client.
func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	return &OpenAIClient{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(cfg.OpenAIBaseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.OpenAITimeout),
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.ModelLLM,
		temperature: cfg.LLMTemperature,
	}
}

// Name implements llm.Provider.
func (c *OpenAIClient) Name() string {
	return config.ProviderOpenAI
}

// Chat sends messages and returns the first choice's content.
func (c *OpenAIClient) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	if c.apiKey == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeConfiguration,
			"OPENAI_API_KEY is not configured", nil, "llm-openai-config-001")
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: c.temperature,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	var completion openai.ChatCompletionResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(req).
		SetResult(&completion).
		Post("/chat/completions")
	if err != nil {
		return "", upstreamError(ctx, c.Name(), err.Error(), err)
	}
	if resp.IsError() {
		return "", upstreamError(ctx, c.Name(), fmt.Sprintf("status %d: %s", resp.StatusCode(), truncate(resp.String(), 512)), nil)
	}
	if len(completion.Choices) == 0 {
		return "", upstreamError(ctx, c.Name(), "no choices in response", nil)
	}
	return completion.Choices[0].Message.Content, nil
}

var _ llm.Provider = (*OpenAIClient)(nil)
