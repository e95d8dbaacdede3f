package classifier

import (
	"strings"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

type Classifier interface {
	Classify(text string) models.Category
}

// Scorer exposes per-category scores behind a classification.
type Scorer interface {
	Scores(text string) map[models.Category]int
}

// KeywordClassifier scores categories by counting keyword phrases found in the text.
type KeywordClassifier struct {
	order    []models.Category
	keywords map[models.Category][]string
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		order:    models.Categories,
		keywords: categoryKeywords,
	}
}

// Classify returns the category with the most matching phrases.
// Ties go to the category declared first; no match returns CategoryNone.
func (c *KeywordClassifier) Classify(text string) models.Category {
	content := strings.ToLower(text)

	best := models.CategoryNone
	bestScore := 0
	for _, category := range c.order {
		score := 0
		for _, keyword := range c.keywords[category] {
			if strings.Contains(content, keyword) {
				score++
			}
		}
		// Strictly greater keeps the earlier category on a tie.
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	return best
}

// Scores returns the non-zero score of every category, for diagnostics.
func (c *KeywordClassifier) Scores(text string) map[models.Category]int {
	content := strings.ToLower(text)
	scores := make(map[models.Category]int)
	for _, category := range c.order {
		for _, keyword := range c.keywords[category] {
			if strings.Contains(content, keyword) {
				scores[category]++
			}
		}
	}
	return scores
}
