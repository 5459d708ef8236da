package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Supported LLM providers.
const (
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
)

// Config holds the environment driven configuration for the site agent.
//
// Provider credentials are intentionally not validated here: a missing key only
// fails the request that needs it.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"site-agent"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8090"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// LLM provider
	LLMProvider        string        `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAITimeout      time.Duration `env:"OPENAI_TIMEOUT" envDefault:"120s"`
	HuggingFaceAPIKey  string        `env:"HUGGINGFACE_API_KEY"`
	HuggingFaceBaseURL string        `env:"HUGGINGFACE_BASE_URL" envDefault:"https://api-inference.huggingface.co"`
	HuggingFaceModel   string        `env:"HUGGINGFACE_MODEL" envDefault:"mistralai/Mixtral-8x7B-Instruct-v0.1"`
	HuggingFaceTimeout time.Duration `env:"HUGGINGFACE_TIMEOUT" envDefault:"240s"`
	HFMaxNewTokens     int           `env:"HF_MAX_NEW_TOKENS" envDefault:"1500"`
	ModelLLM           string        `env:"MODEL_LLM" envDefault:"gpt-4.1"`
	ModelEmbeddings    string        `env:"MODEL_EMBEDDINGS" envDefault:"text-embedding-3-large"`
	LLMTemperature     float32       `env:"LLM_TEMPERATURE" envDefault:"0.2"`
	LLMLogContent      string        `env:"LLM_LOG_CONTENT" envDefault:"hashed"` // none, hashed or full

	// Storage
	OutputDir        string `env:"OUTPUT_DIR" envDefault:"./output"`
	ConversationsDir string `env:"CONVERSATIONS_DIR" envDefault:"./data/conversations"`
	FrontendDistDir  string `env:"FRONTEND_DIST_DIR" envDefault:""`

	// Version control
	GitAutoCommit  bool   `env:"GIT_AUTO_COMMIT" envDefault:"false"`
	GitAuthorName  string `env:"GIT_AUTHOR_NAME" envDefault:"site-agent"`
	GitAuthorEmail string `env:"GIT_AUTHOR_EMAIL" envDefault:"site-agent@localhost"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present, loaded by the binaries before calling Load)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))

	switch strings.ToLower(cfg.LogFormat) {
	case "console", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be one of console, json (got %q)", cfg.LogFormat)
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	if strings.TrimSpace(cfg.ConversationsDir) == "" {
		return nil, fmt.Errorf("CONVERSATIONS_DIR must not be empty")
	}

	if cfg.HFMaxNewTokens <= 0 {
		cfg.HFMaxNewTokens = 1500
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
