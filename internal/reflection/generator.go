// Package reflection asks a chat-completion model for short reminders
// inspired by a hadith. Output is formatted, not verified.
package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/metrics"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the Groq model used when none is configured.
	DefaultModel = "llama-3.1-8b-instant"
	// DefaultCount is how many reflections are requested.
	DefaultCount = 3
	// DefaultTemperature is the sampling temperature sent with every request.
	DefaultTemperature = 0.7

	// APIKeyVariable names the credential in configuration errors.
	APIKeyVariable = "GROQ_API_KEY"

	service = "reflection"
)

// Config is everything the generator needs to reach the completion endpoint.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Count       int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.Count <= 0 {
		c.Count = DefaultCount
	}
	return c
}

// Generator produces reflections for one hadith per call.
type Generator struct {
	cfg    Config
	client *openai.Client
}

// Option configures a Generator.
type Option func(*openai.ClientConfig)

// WithHTTPClient sets the HTTP client used for completion calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cc *openai.ClientConfig) {
		cc.HTTPClient = c
	}
}

// NewGenerator builds a Generator. A missing API key is not an error here;
// Generate reports it as *apperr.ConfigError before any request is made.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	cfg = cfg.withDefaults()

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	for _, opt := range opts {
		opt(&clientCfg)
	}

	return &Generator{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// Configured reports whether an API key is available.
func (g *Generator) Configured() bool {
	return g.cfg.APIKey != ""
}

// Generate asks the model for reflections on h.
// The result may hold fewer lines than requested, or none, but is never nil on success.
func (g *Generator) Generate(ctx context.Context, h model.Hadith) (model.Reflections, error) {
	if !g.Configured() {
		return nil, apperr.NewConfigError(APIKeyVariable)
	}

	started := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(h, g.cfg.Count)},
		},
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		gwErr := classify(err)
		outcome := metrics.OutcomeTransport
		switch {
		case apperr.IsParse(gwErr):
			outcome = metrics.OutcomeParse
		case apperr.StatusCode(gwErr) != 0:
			outcome = metrics.OutcomeStatus
		}
		metrics.ObserveUpstream(service, outcome, started)
		log.Error().Err(err).Str("model", g.cfg.Model).Str("hadith", h.ID).Msg("[reflection] completion failed")
		return nil, gwErr
	}
	metrics.ObserveUpstream(service, metrics.OutcomeSuccess, started)

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	reflections := ParseReflections(content)
	log.Debug().Str("hadith", h.ID).Int("count", len(reflections)).Msg("[reflection] generated")
	return reflections, nil
}

// classify maps go-openai errors onto the gateway error taxonomy.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperr.NewStatusError(service, apiErr.HTTPStatusCode, errors.New(apiErr.Message))
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return apperr.NewStatusError(service, reqErr.HTTPStatusCode, reqErr.Err)
	}

	// A 2xx reply whose body is not a completion.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperr.NewParseError(service, err)
	}

	return apperr.NewTransportError(service, fmt.Errorf("chat completion: %w", err))
}
