package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	clf := NewKeywordClassifier()

	tests := []struct {
		name string
		text string
		want models.Category
	}{
		{"landlord eviction", "My LANDLORD served an eviction notice", models.CategoryProperty},
		{"unpaid salary", "my employer has not paid my salary", models.CategoryLabour},
		{"upi scam", "I lost money in a UPI scam after sharing an OTP", models.CategoryCyber},
		{"divorce", "I want a divorce from my husband", models.CategoryFamily},
		{"no keyword", "good morning", models.CategoryNone},
		{"empty", "", models.CategoryNone},
		// "complaint" scores criminal and consumer once each; criminal is declared first.
		{"tie goes to first declared", "complaint", models.CategoryCriminal},
		// "discrimination" scores employment and human_rights once each.
		{"tie between later categories", "discrimination", models.CategoryEmployment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clf.Classify(tt.text))
		})
	}
}

func TestKeywordClassifier_Idempotent(t *testing.T) {
	clf := NewKeywordClassifier()
	text := "police refused to file my FIR about the theft"
	assert.Equal(t, clf.Classify(text), clf.Classify(text))
}

func TestKeywordClassifier_Scores(t *testing.T) {
	clf := NewKeywordClassifier()

	// "land" is a substring of "landlord", so property scores three phrases.
	scores := clf.Scores("landlord eviction")
	assert.Equal(t, 3, scores[models.CategoryProperty])
	_, hasCyber := scores[models.CategoryCyber]
	assert.False(t, hasCyber)
}
