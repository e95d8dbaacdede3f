package referral

import (
	"strings"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// DefaultLimit is the number of contacts suggested with a reply.
const DefaultLimit = 3

// specialtyKeywords maps a category to the specialty substrings that qualify a contact.
var specialtyKeywords = map[models.Category][]string{
	models.CategoryFamily:      {"family", "domestic", "women", "divorce", "matrimonial"},
	models.CategoryProperty:    {"property", "rent", "tenant", "rera"},
	models.CategoryLabour:      {"labour", "wage", "worker"},
	models.CategoryCriminal:    {"criminal", "bail", "fir"},
	models.CategoryConsumer:    {"consumer", "rera", "fraud"},
	models.CategoryCyber:       {"cyber", "it law", "online fraud"},
	models.CategoryEmployment:  {"employment", "posh", "wrongful"},
	models.CategoryHumanRights: {"human rights", "dalit", "rights"},
}

type Finder interface {
	Find(category models.Category, limit int) []models.ReferralContact
}

// Find selects up to limit contacts for category. With no category the first
// limit contacts are returned. Otherwise specialty matches come first, followed
// by every free contact not already included.
func (d *Directory) Find(category models.Category, limit int) []models.ReferralContact {
	if limit <= 0 {
		return nil
	}

	if category.IsNone() {
		return truncate(d.contacts, limit)
	}

	keywords := specialtyKeywords[category]
	included := make([]bool, len(d.contacts))
	var matched []models.ReferralContact

	for i, contact := range d.contacts {
		specialty := strings.ToLower(contact.Specialty)
		for _, kw := range keywords {
			if strings.Contains(specialty, kw) {
				matched = append(matched, contact)
				included[i] = true
				break
			}
		}
	}

	// Free legal aid always surfaces.
	for i, contact := range d.contacts {
		if contact.FeeType == models.FeeFree && !included[i] {
			matched = append(matched, contact)
			included[i] = true
		}
	}

	return truncate(matched, limit)
}

func truncate(contacts []models.ReferralContact, limit int) []models.ReferralContact {
	if len(contacts) > limit {
		contacts = contacts[:limit]
	}
	return append([]models.ReferralContact(nil), contacts...)
}
