package capability

import (
	"context"
	"hash/fnv"

	"go.uber.org/zap"
)

var demoTranscripts = []string{
	"My landlord is refusing to return my security deposit after I moved out.",
	"I have not received my salary for the past two months from my employer.",
	"My husband is physically abusing me and I need help understanding my legal options.",
	"I received a fake WhatsApp message and I lost money through a UPI transfer.",
	"Can you help me understand how to file an FIR at the police station?",
	"My employer fired me without any notice or explanation. What are my rights?",
}

type demoDocument struct {
	documentType string
	text         string
}

var demoDocuments = []demoDocument{
	{
		documentType: "Rent Agreement",
		text: "RENT AGREEMENT\n" +
			"Landlord: Mr. Ramesh Kumar\n" +
			"Tenant: Mr. Arun Sharma\n" +
			"Property: Flat No. 204, Brigade Apartments, Koramangala, Bengaluru - 560034\n" +
			"Monthly Rent: Rs. 18,000/- (Eighteen Thousand Only)\n" +
			"Security Deposit: Rs. 54,000/- (Three months)\n" +
			"Lease Period: 11 months from 01-Jan-2025\n" +
			"Notice Period: 1 month\n" +
			"Signed: 01-Jan-2025",
	},
	{
		documentType: "Employment Letter",
		text: "APPOINTMENT LETTER\n" +
			"Employee: Ms. Priya Nair\n" +
			"Designation: Software Engineer\n" +
			"Basic Salary: Rs. 45,000/- per month\n" +
			"Notice Period: 60 days\n" +
			"Date of Joining: 15-March-2024\n" +
			"Probation Period: 6 months",
	},
	{
		documentType: "Legal Notice",
		text: "LEGAL NOTICE\n" +
			"From: Adv. Kavitha Reddy, Jayanagar, Bengaluru\n" +
			"To: M/s XYZ Builders Pvt. Ltd.\n" +
			"Subject: Delay in possession of flat and refund of amount paid\n" +
			"You are hereby called upon to pay Rs. 8,50,000 within 15 days\n" +
			"failing which legal proceedings shall be initiated.",
	},
	{
		documentType: "FIR Copy",
		text: "FIRST INFORMATION REPORT\n" +
			"FIR No.: 456/2025\n" +
			"Police Station: Koramangala\n" +
			"Date: 22-Jan-2025\n" +
			"Complainant: Suresh Babu\n" +
			"Offence: IPC Section 420 (Cheating), IPC Section 506 (Criminal Intimidation)\n" +
			"Brief facts: Accused defrauded complainant of Rs. 2,50,000 via fake investment scheme.",
	},
}

// pick chooses a stable index for key so the same media always yields the same demo result.
func pick(key string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}

type MockSpeechToText struct {
	logger *zap.Logger
}

func NewMockSpeechToText(logger *zap.Logger) *MockSpeechToText {
	return &MockSpeechToText{logger: logger}
}

func (m *MockSpeechToText) Transcribe(ctx context.Context, mediaURL, languageHint string) (Transcript, error) {
	m.logger.Info("Mock transcription",
		zap.String("media_url", mediaURL),
		zap.String("language", languageHint))

	return Transcript{
		Text: demoTranscripts[pick(mediaURL, len(demoTranscripts))],
		Mock: true,
	}, nil
}

type MockOCR struct {
	logger *zap.Logger
}

func NewMockOCR(logger *zap.Logger) *MockOCR {
	return &MockOCR{logger: logger}
}

func (m *MockOCR) Extract(ctx context.Context, mediaURL string) (Extraction, error) {
	m.logger.Info("Mock OCR", zap.String("media_url", mediaURL))

	doc := demoDocuments[pick(mediaURL, len(demoDocuments))]
	return Extraction{
		Text:         doc.text,
		DocumentType: doc.documentType,
		Mock:         true,
	}, nil
}

// MockTranslator passes text through unchanged and flags non-English input as simulated.
type MockTranslator struct {
	logger *zap.Logger
}

func NewMockTranslator(logger *zap.Logger) *MockTranslator {
	return &MockTranslator{logger: logger}
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLanguage string) (Translation, error) {
	if sourceLanguage == "en" {
		return Translation{Text: text}, nil
	}

	m.logger.Info("Mock translation",
		zap.String("source_language", sourceLanguage),
		zap.Int("text_len", len(text)))

	return Translation{Text: text, Mock: true}, nil
}
