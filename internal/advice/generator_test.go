package advice

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

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

func newTestClient(url string) *openai.Client {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = url + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestGPTGenerator_Unconfigured(t *testing.T) {
	g := NewGPTGenerator(nil, "gpt-4o-mini", 512, 0.3, zap.NewNop())

	property := g.Generate(context.Background(), "landlord", "Koramangala, Bengaluru Urban, Karnataka", models.CategoryProperty)
	assert.Contains(t, property, "Property/Rent Law")

	general := g.Generate(context.Background(), "hello", "Koramangala, Bengaluru Urban, Karnataka", models.CategoryNone)
	assert.Contains(t, general, "Legal Information for: Koramangala, Bengaluru Urban, Karnataka")

	// Categories without canned text use the general guidance.
	consumer := g.Generate(context.Background(), "refund", "Bengaluru, Bengaluru Urban, Karnataka", models.CategoryConsumer)
	assert.Contains(t, consumer, "15100")
}

func TestGPTGenerator_Success(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  You can approach the Rent Controller.  "}}]}`))
	}))
	defer srv.Close()

	g := NewGPTGenerator(newTestClient(srv.URL), "gpt-4o-mini", 512, 0.3, zap.NewNop())
	text := g.Generate(context.Background(), "landlord won't return deposit", "Koramangala, Bengaluru Urban, Karnataka", models.CategoryProperty)

	assert.Equal(t, "You can approach the Rent Controller.", text)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "**Koramangala, Bengaluru Urban, Karnataka**")
	assert.Contains(t, got.Messages[1].Content, "**property law**")
	assert.Equal(t, 512, got.MaxTokens)
}

func TestGPTGenerator_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"upstream error", http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
		{"empty content", http.StatusOK, `{"choices":[{"index":0,"message":{"role":"assistant","content":"   "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewGPTGenerator(newTestClient(srv.URL), "gpt-4o-mini", 512, 0.3, zap.NewNop())
			text := g.Generate(context.Background(), "my UPI payment was stolen", "Bengaluru, Bengaluru Urban, Karnataka", models.CategoryCyber)
			assert.Contains(t, text, "Cyber Crime")
		})
	}
}

func TestBuildPrompt_NoCategory(t *testing.T) {
	prompt := buildPrompt("hello", "Bengaluru, Bengaluru Urban, Karnataka", models.CategoryNone)
	assert.NotContains(t, prompt, "appears to relate")
	assert.Contains(t, prompt, "User's query: hello")
}
