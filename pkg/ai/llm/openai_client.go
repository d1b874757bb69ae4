package llm

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/logger"
)

// OpenAIClient wraps the OpenAI chat-completion API for website generation.
// It always requests JSON-object output and attaches reference images as
// low-detail parts. No retries live here: a failed call surfaces as a typed
// generation-transport error and retry policy stays with the caller.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	log         logger.Logger
}

// Config for the OpenAI client
type Config struct {
	APIKey      string
	Model       string        // default: gpt-4o
	Temperature float32       // default: 0.8
	MaxTokens   int           // default: 4000
	Timeout     time.Duration // default: 90s, bounds every generation call
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(cfg Config, log logger.Logger) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 90 * time.Second
	}
	if log == nil {
		log = logger.Default()
	}

	return &OpenAIClient{
		client:      openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		log:         log,
	}
}

// CompleteJSON sends one generation request and returns the raw response
// content. The model is asked for JSON-only output; parsing and repair are
// the sanitizer's job, not ours. Timeouts are treated exactly like transport
// failures: typed error, nothing partial.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, imageURLs []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	userMessage := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(imageURLs) == 0 {
		userMessage.Content = userPrompt
	} else {
		parts := make([]openai.ChatMessagePart, 0, len(imageURLs)+1)
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: userPrompt,
		})
		for _, url := range imageURLs {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    url,
					Detail: openai.ImageURLDetailLow,
				},
			})
		}
		userMessage.MultiContent = parts
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			userMessage,
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		c.log.Error("generation call failed", "model", c.model, "duration", duration.String(), "error", err)
		return "", domain.NewGenerationTransportError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.log.Error("generation call returned no content", "model", c.model)
		return "", domain.NewGenerationTransportError(nil)
	}

	c.log.Info("generation call completed",
		"model", c.model,
		"tokens", resp.Usage.TotalTokens,
		"duration", duration.String())

	return resp.Choices[0].Message.Content, nil
}
