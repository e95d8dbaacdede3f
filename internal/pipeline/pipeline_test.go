package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/advice"
	"github.com/xaenox/nyaymitra-bot/internal/capability"
	"github.com/xaenox/nyaymitra-bot/internal/classifier"
	"github.com/xaenox/nyaymitra-bot/internal/intake"
	"github.com/xaenox/nyaymitra-bot/internal/language"
	"github.com/xaenox/nyaymitra-bot/internal/location"
	"github.com/xaenox/nyaymitra-bot/internal/models"
	"github.com/xaenox/nyaymitra-bot/internal/referral"
	"github.com/xaenox/nyaymitra-bot/internal/reply"
)

type brokenSpeech struct{}

func (brokenSpeech) Transcribe(context.Context, string, string) (capability.Transcript, error) {
	panic("native decoder crashed")
}

type panicComposer struct{}

func (panicComposer) Compose(context.Context, models.NormalizedIntake, models.JurisdictionRecord) models.OutboundReply {
	panic("nil map")
}

type emptyComposer struct{}

func (emptyComposer) Compose(context.Context, models.NormalizedIntake, models.JurisdictionRecord) models.OutboundReply {
	return models.OutboundReply{}
}

func newPipeline(speech capability.SpeechToText) *Pipeline {
	logger := zap.NewNop()
	dir := referral.NewDirectory([]models.ReferralContact{
		{Name: "Rent Lawyer", Specialty: "Property & Rent", FeeType: models.FeeConsultation},
		{Name: "Legal Aid", Specialty: "All Matters", FeeType: models.FeeFree},
	})
	in := intake.New(speech, capability.NewMockOCR(logger),
		language.NewNormalizer(capability.NewMockTranslator(logger), logger), logger)
	composer := reply.NewComposer(classifier.NewKeywordClassifier(), dir,
		advice.NewGPTGenerator(nil, "", 0, 0, logger), referral.DefaultLimit, logger)
	return New(in, composer, time.Second, logger)
}

func f(v float64) *float64 { return &v }

func TestHandle_AlwaysEndsWithDisclaimer(t *testing.T) {
	p := newPipeline(capability.NewMockSpeechToText(zap.NewNop()))

	messages := []models.InboundMessage{
		{},
		{Body: "help"},
		{Body: "shared", Latitude: f(12.9), Longitude: f(77.6)},
		{NumMedia: 1, MediaURL: "https://media/1", MediaContentType: "audio/ogg"},
		{NumMedia: 1, MediaURL: "https://media/2", MediaContentType: "image/jpeg"},
		{Body: "My landlord in 560025 wants an eviction"},
		{Body: "ನನ್ನ ಮನೆ ಮಾಲೀಕ"},
		{Body: "what is the weather"},
	}

	for _, msg := range messages {
		got := p.Handle(context.Background(), msg)
		require.NotEmpty(t, strings.TrimSpace(got.Text))
		assert.True(t, strings.HasSuffix(got.Text, reply.Disclaimer), "message %+v", msg)
	}
}

func TestHandle_Welcome(t *testing.T) {
	p := newPipeline(capability.NewMockSpeechToText(zap.NewNop()))

	assert.Equal(t, reply.WelcomeMessage, p.Handle(context.Background(), models.InboundMessage{}).Text)
	assert.Equal(t, reply.WelcomeMessage, p.Handle(context.Background(), models.InboundMessage{Body: "HeLp"}).Text)
}

func TestHandle_TextWithPostalCode(t *testing.T) {
	p := newPipeline(capability.NewMockSpeechToText(zap.NewNop()))

	got := p.Handle(context.Background(), models.InboundMessage{Body: "My landlord in 560025 wants an eviction"})

	assert.Equal(t, "Koramangala, Bengaluru Urban, Karnataka", got.Jurisdiction)
	assert.Equal(t, models.CategoryProperty, got.Category)
	assert.True(t, got.ReferralsSuggested)
	assert.Contains(t, got.Text, "Property/Rent Law")
	assert.Contains(t, got.Text, "*Rent Lawyer*")
	assert.Contains(t, got.Text, "*Legal Aid*")
}

func TestHandle_CapabilityPanicIsContained(t *testing.T) {
	p := newPipeline(brokenSpeech{})

	got := p.Handle(context.Background(), models.InboundMessage{NumMedia: 1, MediaContentType: "audio/ogg"})

	assert.NotEqual(t, reply.ApologyMessage, got.Text)
	assert.Contains(t, got.Text, "Voice transcription simulated")
	assert.True(t, strings.HasSuffix(got.Text, reply.Disclaimer))
}

func TestHandle_UnexpectedPanicReturnsApology(t *testing.T) {
	logger := zap.NewNop()
	in := intake.New(capability.NewMockSpeechToText(logger), capability.NewMockOCR(logger),
		language.NewNormalizer(capability.NewMockTranslator(logger), logger), logger)
	p := New(in, panicComposer{}, 0, logger)

	got := p.Handle(context.Background(), models.InboundMessage{Body: "bail hearing near 560025"})
	assert.Equal(t, reply.ApologyMessage, got.Text)
	assert.Equal(t, "Koramangala, Bengaluru Urban, Karnataka", got.Jurisdiction)

	chat := p.HandleChat(context.Background(), "bail", "Whitefield")
	assert.Equal(t, reply.ApologyMessage, chat.Text)
	assert.Equal(t, "Whitefield, Bengaluru Urban, Karnataka", chat.Jurisdiction)
}

func TestHandle_EmptyReplyReturnsApology(t *testing.T) {
	logger := zap.NewNop()
	in := intake.New(capability.NewMockSpeechToText(logger), capability.NewMockOCR(logger),
		language.NewNormalizer(capability.NewMockTranslator(logger), logger), logger)
	p := New(in, emptyComposer{}, 0, logger)

	got := p.Handle(context.Background(), models.InboundMessage{Body: "bail"})
	assert.Equal(t, reply.ApologyMessage, got.Text)
	assert.Equal(t, location.Default().Display, got.Jurisdiction)
}

func TestHandleChat(t *testing.T) {
	p := newPipeline(capability.NewMockSpeechToText(zap.NewNop()))

	got := p.HandleChat(context.Background(), "I was hacked and lost money via UPI", "Indiranagar")

	assert.Equal(t, "Indiranagar, Bengaluru Urban, Karnataka", got.Jurisdiction)
	assert.Equal(t, models.CategoryCyber, got.Category)
	assert.True(t, strings.HasPrefix(got.Text, "💻 *Cyber Crime"))
	assert.True(t, strings.HasSuffix(got.Text, reply.Disclaimer))
}
