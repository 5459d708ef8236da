package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/janhq/site-agent/internal/config"
	"github.com/janhq/site-agent/internal/domain/llm"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// HuggingFaceClient calls the Hugging Face inference API with a flattened prompt.
type HuggingFaceClient struct {
	httpClient   *resty.Client
	apiKey       string
	model        string
	maxNewTokens int
	temperature  float32
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float32 `json:"temperature"`
}

type hfGeneration struct {
	GeneratedText *string `json:"generated_text"`
}

// NewHuggingFaceClient creates a Resty-backed inference client.
func NewHuggingFaceClient(cfg *config.Config) *HuggingFaceClient {
	return &HuggingFaceClient{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(cfg.HuggingFaceBaseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.HuggingFaceTimeout),
		apiKey:       cfg.HuggingFaceAPIKey,
		model:        cfg.HuggingFaceModel,
		maxNewTokens: cfg.HFMaxNewTokens,
		temperature:  cfg.LLMTemperature,
	}
}

// Name implements llm.Provider.
func (c *HuggingFaceClient) Name() string {
	return config.ProviderHuggingFace
}

// Chat renders messages as a labelled transcript and returns the generated text.
// A body of unknown shape is returned verbatim.
func (c *HuggingFaceClient) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	if c.apiKey == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeConfiguration,
			"HUGGINGFACE_API_KEY is not configured", nil, "llm-hf-config-001")
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(hfRequest{
			Inputs: RenderTranscript(messages),
			Parameters: hfParameters{
				MaxNewTokens: c.maxNewTokens,
				Temperature:  c.temperature,
			},
		}).
		Post("/models/" + escapeModel(c.model))
	if err != nil {
		return "", upstreamError(ctx, c.Name(), err.Error(), err)
	}
	if resp.IsError() {
		return "", upstreamError(ctx, c.Name(), fmt.Sprintf("status %d: %s", resp.StatusCode(), truncate(resp.String(), 512)), nil)
	}
	return parseGeneration(resp.Body()), nil
}

// RenderTranscript joins messages as "Role: content" paragraphs.
func RenderTranscript(messages []llm.Message) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, fmt.Sprintf("%s: %s", roleLabel(m.Role), m.Content))
	}
	return strings.Join(parts, "\n\n")
}

func roleLabel(role string) string {
	switch role {
	case llm.RoleSystem:
		return "System"
	case llm.RoleUser, "":
		return "User"
	case llm.RoleAssistant:
		return "Assistant"
	default:
		return strings.ToUpper(role[:1]) + strings.ToLower(role[1:])
	}
}

func parseGeneration(body []byte) string {
	var list []hfGeneration
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].GeneratedText != nil {
		return *list[0].GeneratedText
	}

	var single hfGeneration
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != nil && *single.GeneratedText != "" {
		return *single.GeneratedText
	}
	return string(body)
}

// escapeModel escapes each segment of an "org/name" model id.
func escapeModel(model string) string {
	segments := strings.Split(model, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

var _ llm.Provider = (*HuggingFaceClient)(nil)
