package referral

import (
	"fmt"
	"strings"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// FormatSuggestions renders contacts as a numbered chat block. It returns ""
// for an empty list.
func FormatSuggestions(contacts []models.ReferralContact) string {
	if len(contacts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n📋 *Suggested Legal Help Near You (Bengaluru):*")
	for i, c := range contacts {
		ngoTag := ""
		if c.IsNGO {
			ngoTag = " 🏛️ NGO/Gov"
		}
		fmt.Fprintf(&b, "\n\n%d. *%s*%s\n   📌 %s\n   📍 %s\n   📞 %s | %s\n   🗣️ %s",
			i+1,
			c.Name,
			ngoTag,
			orDefault(c.Specialty, "General"),
			orDefault(c.Area, "Bengaluru"),
			orDefault(c.Phone, "N/A"),
			c.FeeType.Label(),
			strings.Join(c.Languages, ", "),
		)
	}
	return b.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
