package language

import (
	"context"
	"unicode"

	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/capability"
)

// English is returned when no recognised non-Latin script is present.
const English = "en"

type script struct {
	table *unicode.RangeTable
	code  string
}

// scripts is checked in order; the first script present in the text wins.
var scripts = []script{
	{unicode.Kannada, "kn"},
	{unicode.Devanagari, "hi"},
	{unicode.Tamil, "ta"},
	{unicode.Telugu, "te"},
	{unicode.Arabic, "ur"},
}

// Detect guesses the language of text from the Unicode scripts it contains.
// Romanised or unrecognised text is reported as English.
func Detect(text string) string {
	for _, s := range scripts {
		for _, r := range text {
			if unicode.Is(s.table, r) {
				return s.code
			}
		}
	}
	return English
}

// Result is the English-normalised form of a message.
type Result struct {
	Text             string
	DetectedLanguage string
	Simulated        bool
}

// Normalizer turns user text into an English query.
type Normalizer struct {
	translator capability.Translator
	logger     *zap.Logger
}

func NewNormalizer(translator capability.Translator, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		translator: translator,
		logger:     logger,
	}
}

// Normalize detects the language and translates non-English text. English text
// passes through untouched. If translation fails the original text is kept and
// the result is marked simulated.
func (n *Normalizer) Normalize(ctx context.Context, text string) Result {
	lang := Detect(text)
	if lang == English {
		return Result{Text: text, DetectedLanguage: English}
	}

	translated, err := n.translator.Translate(ctx, text, lang)
	if err != nil {
		n.logger.Warn("Translation failed, using original text",
			zap.Error(err),
			zap.String("language", lang))
		return Result{Text: text, DetectedLanguage: lang, Simulated: true}
	}
	if translated.Text == "" {
		translated.Text = text
	}

	return Result{
		Text:             translated.Text,
		DetectedLanguage: lang,
		Simulated:        translated.Mock,
	}
}
