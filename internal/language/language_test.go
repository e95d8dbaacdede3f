package language

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/capability"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "my landlord kept my deposit", "en"},
		{"romanised hindi", "mera makaan malik deposit nahi de raha", "en"},
		{"empty", "", "en"},
		{"kannada", "ನನ್ನ ಮನೆ ಮಾಲೀಕ", "kn"},
		{"hindi", "मेरा मकान मालिक", "hi"},
		{"tamil", "என் வீட்டு உரிமையாளர்", "ta"},
		{"telugu", "నా ఇంటి యజమాని", "te"},
		{"urdu", "میرا مالک مکان", "ur"},
		// Kannada is checked before Devanagari regardless of position in the text.
		{"priority order", "मेरा ನನ್ನ", "kn"},
		{"mixed with latin", "FIR ಬಗ್ಗೆ", "kn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

type stubTranslator struct {
	result capability.Translation
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, text, source string) (capability.Translation, error) {
	s.calls++
	return s.result, s.err
}

func TestNormalizer_EnglishIsNoOp(t *testing.T) {
	tr := &stubTranslator{}
	n := NewNormalizer(tr, zap.NewNop())

	got := n.Normalize(context.Background(), "What are my rights?")
	assert.Equal(t, Result{Text: "What are my rights?", DetectedLanguage: "en"}, got)
	assert.Equal(t, 0, tr.calls)
}

func TestNormalizer_MockTranslation(t *testing.T) {
	n := NewNormalizer(capability.NewMockTranslator(zap.NewNop()), zap.NewNop())

	got := n.Normalize(context.Background(), "ನನ್ನ ಮನೆ ಮಾಲೀಕ")
	assert.Equal(t, "ನನ್ನ ಮನೆ ಮಾಲೀಕ", got.Text)
	assert.Equal(t, "kn", got.DetectedLanguage)
	assert.True(t, got.Simulated)
}

func TestNormalizer_RealTranslation(t *testing.T) {
	tr := &stubTranslator{result: capability.Translation{Text: "my landlord"}}
	n := NewNormalizer(tr, zap.NewNop())

	got := n.Normalize(context.Background(), "मेरा मकान मालिक")
	assert.Equal(t, Result{Text: "my landlord", DetectedLanguage: "hi"}, got)
}

func TestNormalizer_TranslationError(t *testing.T) {
	tr := &stubTranslator{err: errors.New("quota exceeded")}
	n := NewNormalizer(tr, zap.NewNop())

	got := n.Normalize(context.Background(), "मेरा मकान मालिक")
	assert.Equal(t, Result{Text: "मेरा मकान मालिक", DetectedLanguage: "hi", Simulated: true}, got)
}
