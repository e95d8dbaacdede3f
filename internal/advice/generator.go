package advice

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// Generator produces advice text. Implementations always return non-empty
// text and handle upstream failures themselves.
type Generator interface {
	Generate(ctx context.Context, query, jurisdiction string, category models.Category) string
}

type GPTGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

// NewGPTGenerator returns a generator backed by the chat completions API.
// A nil client makes every call use the canned fallback advice.
func NewGPTGenerator(client *openai.Client, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTGenerator {
	return &GPTGenerator{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (g *GPTGenerator) Generate(ctx context.Context, query, jurisdiction string, category models.Category) string {
	if g.client == nil {
		g.logger.Debug("OpenAI not configured, using fallback advice", zap.String("category", category.String()))
		return fallbackAdvice(jurisdiction, category)
	}

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(query, jurisdiction, category),
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to get advice response", zap.Error(err))
		return fallbackAdvice(jurisdiction, category)
	}

	if len(resp.Choices) == 0 {
		g.logger.Error("Advice response had no choices", zap.String("model", resp.Model))
		return fallbackAdvice(jurisdiction, category)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		g.logger.Error("Advice response was empty", zap.String("model", resp.Model))
		return fallbackAdvice(jurisdiction, category)
	}

	return text
}
