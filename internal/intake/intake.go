// Package intake decides what kind of message arrived and turns it into a
// query for the advice pipeline.
//
// Modalities are checked in a fixed order and the first match wins:
// empty, greeting, location share, voice, image, plain text.
package intake

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/capability"
	"github.com/xaenox/nyaymitra-bot/internal/language"
	"github.com/xaenox/nyaymitra-bot/internal/models"
	"github.com/xaenox/nyaymitra-bot/internal/reply"
)

type Modality string

const (
	ModalityEmpty    Modality = "empty"
	ModalityGreeting Modality = "greeting"
	ModalityLocation Modality = "location"
	ModalityVoice    Modality = "voice"
	ModalityImage    Modality = "image"
	ModalityText     Modality = "text"
)

// speechLanguageHint is passed to speech-to-text for voice notes.
const speechLanguageHint = "en-IN"

// excerptLimit is how many characters of OCR text are echoed back.
const excerptLimit = 300

var greetings = []string{"hi", "hello", "start", "help", "namaste", "ನಮಸ್ಕಾರ", "नमस्ते"}

// Outcome is the result of intake. A terminal outcome carries the reply text
// and skips advice generation; otherwise Intake holds the query to answer.
type Outcome struct {
	Modality Modality
	Terminal bool
	Reply    string
	Intake   models.NormalizedIntake
}

type route struct {
	modality Modality
	match    func(msg models.InboundMessage) bool
	handle   func(ctx context.Context, msg models.InboundMessage) Outcome
}

type Intake struct {
	speech     capability.SpeechToText
	ocr        capability.OCR
	normalizer *language.Normalizer
	logger     *zap.Logger
	routes     []route
}

func New(speech capability.SpeechToText, ocr capability.OCR, normalizer *language.Normalizer, logger *zap.Logger) *Intake {
	in := &Intake{
		speech:     speech,
		ocr:        ocr,
		normalizer: normalizer,
		logger:     logger,
	}
	in.routes = []route{
		{ModalityEmpty, isEmpty, in.welcome},
		{ModalityGreeting, isGreeting, in.welcome},
		{ModalityLocation, models.InboundMessage.HasLocation, in.handleLocation},
		{ModalityVoice, isVoice, in.handleVoice},
		{ModalityImage, isImage, in.handleImage},
		{ModalityText, func(models.InboundMessage) bool { return true }, in.handleText},
	}
	return in
}

// Classify returns the modality of msg without running any capability.
func (in *Intake) Classify(msg models.InboundMessage) Modality {
	for _, r := range in.routes {
		if r.match(msg) {
			return r.modality
		}
	}
	return ModalityText
}

// Process runs the first matching route. It never returns an error: capability
// failures degrade to empty, simulated results.
func (in *Intake) Process(ctx context.Context, msg models.InboundMessage) Outcome {
	for _, r := range in.routes {
		if !r.match(msg) {
			continue
		}
		out := r.handle(ctx, msg)
		out.Modality = r.modality
		return out
	}
	// The text route matches everything, so this is unreachable.
	return in.handleText(ctx, msg)
}

func isEmpty(msg models.InboundMessage) bool {
	return strings.TrimSpace(msg.Body) == "" && !msg.HasMedia()
}

func isGreeting(msg models.InboundMessage) bool {
	return slices.Contains(greetings, strings.ToLower(strings.TrimSpace(msg.Body)))
}

func isVoice(msg models.InboundMessage) bool {
	return msg.MediaIs("audio/")
}

func isImage(msg models.InboundMessage) bool {
	return msg.MediaIs("image/")
}

func (in *Intake) welcome(ctx context.Context, msg models.InboundMessage) Outcome {
	return Outcome{Terminal: true, Reply: reply.WelcomeMessage}
}

func (in *Intake) handleLocation(ctx context.Context, msg models.InboundMessage) Outcome {
	loc := msg.Address
	if strings.TrimSpace(loc) == "" {
		loc = fmt.Sprintf("GPS: %g,%g", *msg.Latitude, *msg.Longitude)
	}
	in.logger.Info("User shared location", zap.String("sender", msg.Sender), zap.String("location", loc))

	return Outcome{Terminal: true, Reply: reply.LocationNoted(loc)}
}

func (in *Intake) handleVoice(ctx context.Context, msg models.InboundMessage) Outcome {
	in.logger.Info("Processing voice message", zap.String("sender", msg.Sender))

	var transcript capability.Transcript
	err := guard(func() error {
		var err error
		transcript, err = in.speech.Transcribe(ctx, msg.MediaURL, speechLanguageHint)
		return err
	})
	if err != nil {
		in.logger.Warn("Speech-to-text failed, continuing with empty transcript", zap.Error(err))
		transcript = capability.Transcript{Mock: true}
	}

	mockNote := ""
	if transcript.Mock {
		mockNote = "\n_(🎙️ Voice transcription simulated for demo)_\n"
	}

	return Outcome{
		Intake: models.NormalizedIntake{
			Query:     transcript.Text,
			Prefix:    fmt.Sprintf("🎙️ *I heard you say:*\n_%s_%s\n\n", transcript.Text, mockNote),
			Simulated: transcript.Mock,
		},
	}
}

func (in *Intake) handleImage(ctx context.Context, msg models.InboundMessage) Outcome {
	in.logger.Info("Processing document image", zap.String("sender", msg.Sender))

	var extraction capability.Extraction
	err := guard(func() error {
		var err error
		extraction, err = in.ocr.Extract(ctx, msg.MediaURL)
		return err
	})
	if err != nil {
		in.logger.Warn("OCR failed, continuing with empty extraction", zap.Error(err))
		extraction = capability.Extraction{Mock: true}
	}
	if strings.TrimSpace(extraction.DocumentType) == "" {
		extraction.DocumentType = "document"
	}

	mockNote := ""
	if extraction.Mock {
		mockNote = "\n_(📄 OCR simulated for demo)_\n"
	}

	query := fmt.Sprintf("I have a %s. Here are the details: %s. What are my rights and options?",
		extraction.DocumentType, extraction.Text)

	return Outcome{
		Intake: models.NormalizedIntake{
			Query: query,
			Prefix: fmt.Sprintf("📄 *Document detected: %s*%s\n_Key details extracted:_\n```%s...```\n\n",
				extraction.DocumentType, mockNote, excerpt(extraction.Text, excerptLimit)),
			Simulated: extraction.Mock,
		},
	}
}

func (in *Intake) handleText(ctx context.Context, msg models.InboundMessage) Outcome {
	body := strings.TrimSpace(msg.Body)

	var result language.Result
	err := guard(func() error {
		result = in.normalizer.Normalize(ctx, body)
		return nil
	})
	if err != nil {
		in.logger.Warn("Language normalisation failed, using original text", zap.Error(err))
		result = language.Result{Text: body, DetectedLanguage: language.Detect(body), Simulated: true}
	}

	prefix := ""
	if result.DetectedLanguage != language.English && result.Simulated {
		prefix = fmt.Sprintf("_(Language detected: %s — translation simulated)_\n\n",
			capability.LanguageName(result.DetectedLanguage))
	}

	return Outcome{
		Intake: models.NormalizedIntake{
			Query:     result.Text,
			Prefix:    prefix,
			Simulated: result.Simulated,
		},
	}
}

// guard runs a capability call and converts a panic into an error.
func guard(call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability panic: %v", r)
		}
	}()
	return call()
}

// excerpt returns at most limit runes of text.
func excerpt(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit])
}
