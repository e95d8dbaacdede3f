// Package rights builds "Know Your Rights" cards for a few common situations.
package rights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are NyayMitra, an expert Indian legal rights advisor.
Generate a structured "Know Your Rights" card for an Indian citizen in distress.

Respond with ONLY a JSON object in this format:
{
  "title": "Short title for the card (include an emoji)",
  "situation_summary": "One-line summary of the situation",
  "your_rights": ["4-5 rights, each with a specific Indian law reference (Act/Section)"],
  "they_cannot": ["4 things the authority or other party CANNOT legally do"],
  "do_next": ["4-5 immediate steps the person should take"],
  "emergency_contacts": ["NALSA Legal Aid Helpline: 15100", "other real Indian helplines with numbers"],
  "relevant_laws": ["3 laws or Acts with section numbers"]
}

Rules:
- Be specific to Indian law (IPC, CrPC, Constitution, specific Acts).
- Use simple language a non-lawyer understands; one line per item, at most 15 words.
- If a language other than English is requested, translate ALL content to that language.
- Keep the tone empowering and reassuring.`

// Generator produces rights cards with a chat model in JSON mode.
type Generator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewGenerator returns a card generator. A nil client serves canned cards.
func NewGenerator(client *openai.Client, model string, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Generate returns the card for situationID. Only an unknown situation is an
// error; model failures fall back to the canned card.
func (g *Generator) Generate(ctx context.Context, situationID, language, location string) (Card, error) {
	situation, ok := Lookup(situationID)
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownSituation, situationID)
	}

	if g.client == nil {
		g.logger.Debug("OpenAI not configured, using canned rights card", zap.String("situation", situation.ID))
		return cannedCard(situation, language), nil
	}

	card, err := g.request(ctx, situation, language, location)
	if err != nil {
		g.logger.Error("Failed to generate rights card",
			zap.Error(err),
			zap.String("situation", situation.ID))
		return cannedCard(situation, language), nil
	}
	return card, nil
}

func (g *Generator) request(ctx context.Context, situation Situation, language, location string) (Card, error) {
	prompt := fmt.Sprintf("%s\nLocation: %s\nLanguage: %s\n\n"+
		"Generate a 'Know Your Rights' card for this situation. Respond with ONLY the JSON object.",
		situation.promptContext, location, language)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		return Card{}, fmt.Errorf("rights card request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Card{}, fmt.Errorf("rights card request: empty response")
	}

	var card Card
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &card); err != nil {
		return Card{}, fmt.Errorf("parse rights card: %w", err)
	}
	if !card.complete() {
		return Card{}, fmt.Errorf("parse rights card: missing title, rights or next steps")
	}

	card.Situation = situation.ID
	card.Language = language
	card.Icon = situation.Icon
	card.IsMock = false
	return card, nil
}
