package rights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(url string) *openai.Client {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = url + "/v1"
	return openai.NewClientWithConfig(cfg)
}

// chatServer answers every chat completion with content.
func chatServer(t *testing.T, content string, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		if got != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
}

func TestSituations(t *testing.T) {
	assert.Equal(t, []string{"arrested", "evicted", "fired", "cheated"}, SituationIDs())

	s, ok := Lookup("evicted")
	require.True(t, ok)
	assert.Equal(t, "🏠", s.Icon)

	_, ok = Lookup("kidnapped")
	assert.False(t, ok)

	for _, s := range Situations {
		assert.True(t, cannedCards[s.ID].complete(), "canned card for %s", s.ID)
	}
}

func TestGenerator_Unconfigured(t *testing.T) {
	g := NewGenerator(nil, "gpt-4o-mini", zap.NewNop())

	card, err := g.Generate(context.Background(), "arrested", "Hindi", "Bengaluru")
	require.NoError(t, err)
	assert.True(t, card.IsMock)
	assert.Equal(t, "arrested", card.Situation)
	assert.Equal(t, "Hindi", card.Language)
	assert.Equal(t, "🚔", card.Icon)
	assert.Contains(t, card.DoNext, "Call NALSA Legal Aid Helpline: 15100 for free legal help")

	// Returned cards do not share slices with the canned table.
	card.YourRights[0] = "changed"
	again, err := g.Generate(context.Background(), "arrested", "English", "Bengaluru")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.YourRights[0])
}

func TestGenerator_UnknownSituation(t *testing.T) {
	g := NewGenerator(nil, "gpt-4o-mini", zap.NewNop())

	_, err := g.Generate(context.Background(), "kidnapped", "English", "Bengaluru")
	assert.ErrorIs(t, err, ErrUnknownSituation)
}

func TestGenerator_Success(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := chatServer(t, `{
		"title": "Your Rights When Fired",
		"situation_summary": "Terminated without notice",
		"your_rights": ["Notice pay"],
		"they_cannot": ["Withhold salary"],
		"do_next": ["Ask for a termination letter"],
		"emergency_contacts": ["NALSA Legal Aid Helpline: 15100"],
		"relevant_laws": ["Industrial Disputes Act, 1947"]
	}`, &got)
	defer srv.Close()

	g := NewGenerator(newTestClient(srv.URL), "gpt-4o-mini", zap.NewNop())
	card, err := g.Generate(context.Background(), "fired", "Kannada", "Whitefield, Bengaluru")
	require.NoError(t, err)

	assert.False(t, card.IsMock)
	assert.Equal(t, "Your Rights When Fired", card.Title)
	assert.Equal(t, "fired", card.Situation)
	assert.Equal(t, "Kannada", card.Language)
	assert.Equal(t, "💼", card.Icon)

	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, got.ResponseFormat.Type)
	require.Len(t, got.Messages, 2)
	assert.Contains(t, got.Messages[1].Content, "Location: Whitefield, Bengaluru")
	assert.Contains(t, got.Messages[1].Content, "Language: Kannada")
	assert.Contains(t, got.Messages[1].Content, "wrongfully terminated")
}

func TestGenerator_FallsBackToCannedCard(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "Here are your rights: ..."},
		{"missing sections", `{"title": "Rights"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := chatServer(t, tt.content, nil)
			defer srv.Close()

			g := NewGenerator(newTestClient(srv.URL), "gpt-4o-mini", zap.NewNop())
			card, err := g.Generate(context.Background(), "cheated", "English", "Bengaluru")
			require.NoError(t, err)
			assert.True(t, card.IsMock)
			assert.Equal(t, cannedCards["cheated"].Title, card.Title)
		})
	}
}

func TestGenerator_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGenerator(newTestClient(srv.URL), "gpt-4o-mini", zap.NewNop())
	card, err := g.Generate(context.Background(), "evicted", "English", "Bengaluru")
	require.NoError(t, err)
	assert.True(t, card.IsMock)
}
