package rights

import "errors"

// ErrUnknownSituation is returned for a situation id outside Situations.
var ErrUnknownSituation = errors.New("unknown situation")

// Situation is a preset the rights card can be generated for.
type Situation struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	promptContext string
}

// Situations lists the supported presets in display order.
var Situations = []Situation{
	{
		ID:            "arrested",
		Label:         "Arrested / Detained by Police",
		Icon:          "🚔",
		promptContext: "The user has been arrested or detained by police in India.",
	},
	{
		ID:            "evicted",
		Label:         "Evicted / Landlord Dispute",
		Icon:          "🏠",
		promptContext: "The user is being illegally evicted or has a landlord/tenant dispute in India.",
	},
	{
		ID:            "fired",
		Label:         "Fired / Wrongful Termination",
		Icon:          "💼",
		promptContext: "The user has been fired or wrongfully terminated from their job in India.",
	},
	{
		ID:            "cheated",
		Label:         "Cheated by a Vendor / Fraud",
		Icon:          "🛒",
		promptContext: "The user has been cheated by a vendor, online seller, or is a victim of consumer fraud in India.",
	},
}

// Lookup finds a situation by id.
func Lookup(id string) (Situation, bool) {
	for _, s := range Situations {
		if s.ID == id {
			return s, true
		}
	}
	return Situation{}, false
}

// SituationIDs returns the ids of all situations in display order.
func SituationIDs() []string {
	ids := make([]string, 0, len(Situations))
	for _, s := range Situations {
		ids = append(ids, s.ID)
	}
	return ids
}
