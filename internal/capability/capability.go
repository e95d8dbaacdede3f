// Package capability defines the external AI services the intake pipeline
// consumes, each with a mock implementation used when the service is not
// configured. Every result carries a Mock flag so callers can tell the user
// when a step was simulated.
package capability

import "context"

// Transcript is the result of speech-to-text.
type Transcript struct {
	Text string
	Mock bool
}

// Extraction is the result of document OCR.
type Extraction struct {
	Text         string
	DocumentType string
	Mock         bool
}

// Translation is the result of translating text to English.
type Translation struct {
	Text string
	Mock bool
}

type SpeechToText interface {
	Transcribe(ctx context.Context, mediaURL, languageHint string) (Transcript, error)
}

type OCR interface {
	Extract(ctx context.Context, mediaURL string) (Extraction, error)
}

type Translator interface {
	Translate(ctx context.Context, text, sourceLanguage string) (Translation, error)
}
