package capability

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// NewOpenAIClient builds a go-openai client. baseURL may be empty to use the
// public endpoint.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// WhisperSpeechToText transcribes voice notes with the OpenAI audio API.
type WhisperSpeechToText struct {
	client  *openai.Client
	fetcher *MediaFetcher
	model   string
	logger  *zap.Logger
}

func NewWhisperSpeechToText(client *openai.Client, fetcher *MediaFetcher, model string, logger *zap.Logger) *WhisperSpeechToText {
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperSpeechToText{
		client:  client,
		fetcher: fetcher,
		model:   model,
		logger:  logger,
	}
}

func (w *WhisperSpeechToText) Transcribe(ctx context.Context, mediaURL, languageHint string) (Transcript, error) {
	media, err := w.fetcher.Fetch(ctx, mediaURL)
	if err != nil {
		return Transcript{}, err
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: "voice" + audioExtension(media.ContentType),
		Reader:   bytes.NewReader(media.Data),
		Language: isoLanguage(languageHint),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return Transcript{}, fmt.Errorf("transcription request: %w", err)
	}

	w.logger.Info("Transcription complete", zap.Int("text_len", len(resp.Text)))
	return Transcript{Text: strings.TrimSpace(resp.Text)}, nil
}

const ocrPrompt = `Read the legal document in this image. Return a JSON object:
{"document_type": "short name such as Rent Agreement, FIR Copy, Legal Notice", "extracted_text": "the key details as plain text"}`

// VisionOCR extracts document text with a vision-capable chat model.
type VisionOCR struct {
	client  *openai.Client
	fetcher *MediaFetcher
	model   string
	logger  *zap.Logger
}

func NewVisionOCR(client *openai.Client, fetcher *MediaFetcher, model string, logger *zap.Logger) *VisionOCR {
	return &VisionOCR{
		client:  client,
		fetcher: fetcher,
		model:   model,
		logger:  logger,
	}
}

type ocrResponse struct {
	DocumentType  string `json:"document_type"`
	ExtractedText string `json:"extracted_text"`
}

func (v *VisionOCR) Extract(ctx context.Context, mediaURL string) (Extraction, error) {
	media, err := v.fetcher.Fetch(ctx, mediaURL)
	if err != nil {
		return Extraction{}, err
	}

	contentType := media.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(media.Data)

	resp, err := v.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: v.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: ocrPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Extraction{}, fmt.Errorf("ocr request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Extraction{}, errors.New("ocr request: empty response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var parsed ocrResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return Extraction{}, fmt.Errorf("parse ocr response: %w", err)
	}

	if parsed.DocumentType == "" {
		parsed.DocumentType = "Document"
	}

	v.logger.Info("Document extraction complete",
		zap.String("document_type", parsed.DocumentType),
		zap.Int("text_len", len(parsed.ExtractedText)))

	return Extraction{
		Text:         parsed.ExtractedText,
		DocumentType: parsed.DocumentType,
	}, nil
}

// OpenAITranslator translates user text to English with a chat model.
type OpenAITranslator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAITranslator(client *openai.Client, model string, logger *zap.Logger) *OpenAITranslator {
	return &OpenAITranslator{
		client: client,
		model:  model,
		logger: logger,
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceLanguage string) (Translation, error) {
	if sourceLanguage == "en" {
		return Translation{Text: text}, nil
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("Translate the user's message from %s to English. "+
					"Reply with the translation only.", LanguageName(sourceLanguage)),
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return Translation{}, fmt.Errorf("translation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Translation{}, errors.New("translation request: empty response")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return Translation{}, errors.New("translation request: empty translation")
	}

	t.logger.Debug("Translation complete", zap.String("source_language", sourceLanguage))
	return Translation{Text: translated}, nil
}

var languageNames = map[string]string{
	"en": "English",
	"kn": "Kannada",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"ur": "Urdu",
	"mr": "Marathi",
}

// LanguageName returns the English name of a language code, or the code itself.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// isoLanguage turns a BCP-47 hint such as "en-IN" into "en".
func isoLanguage(hint string) string {
	lang, _, _ := strings.Cut(hint, "-")
	return strings.ToLower(lang)
}

func audioExtension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".ogg"
	}
	switch mediaType {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/webm":
		return ".webm"
	case "audio/amr":
		return ".amr"
	default:
		return ".ogg"
	}
}
