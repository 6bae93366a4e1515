package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/metrics"
	"github.com/oshaneheath-star/Poster-collection-app/internal/infrastructure/observability"
)

// ErrEmptyReply is returned when the model answers without any choice.
var ErrEmptyReply = errors.New("model returned no choices")

// Options configures the OpenAI compatible vision client.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// OptionsFromConfig derives client options from the service configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		APIKey:    cfg.LLMAPIKey,
		BaseURL:   cfg.LLMBaseURL,
		Model:     cfg.LLMModel,
		MaxTokens: cfg.LLMMaxTokens,
		Timeout:   cfg.LLMTimeout,
	}
}

// Client sends single image chat completions to an OpenAI compatible endpoint.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
	log       zerolog.Logger
}

// NewClient builds a vision client. It performs no network I/O.
func NewClient(opts Options, log zerolog.Logger) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("llm api key is empty")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("llm model is empty")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}

	clientCfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	return &Client{
		api:       openai.NewClientWithConfig(clientCfg),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		log:       log.With().Str("component", "llm-provider").Str("model", opts.Model).Logger(),
	}, nil
}

// Describe sends a system instruction plus one user turn holding text and an
// image, and returns the trimmed reply text.
func (c *Client) Describe(ctx context.Context, systemPrompt, userPrompt, imageDataURL string) (string, error) {
	ctx, span := observability.StartModelSpan(ctx, c.model)
	defer span.End()
	start := time.Now()

	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: userPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    imageDataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		metrics.RecordModelCall(c.model, "error", time.Since(start).Seconds())
		observability.RecordError(span, err)
		c.log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("chat completion failed")
		return "", err
	}
	metrics.RecordModelCall(c.model, "ok", time.Since(start).Seconds())

	if len(resp.Choices) == 0 {
		observability.RecordError(span, ErrEmptyReply)
		return "", ErrEmptyReply
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.log.Debug().
		Str("reply", reply).
		Int("total_tokens", resp.Usage.TotalTokens).
		Dur("elapsed", time.Since(start)).
		Msg("chat completion finished")
	return reply, nil
}
