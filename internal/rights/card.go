package rights

// Card is a one-page "Know Your Rights" summary for a situation.
type Card struct {
	Title             string   `json:"title"`
	Situation         string   `json:"situation"`
	SituationSummary  string   `json:"situation_summary"`
	Icon              string   `json:"icon"`
	Language          string   `json:"language"`
	YourRights        []string `json:"your_rights"`
	TheyCannot        []string `json:"they_cannot"`
	DoNext            []string `json:"do_next"`
	EmergencyContacts []string `json:"emergency_contacts"`
	RelevantLaws      []string `json:"relevant_laws"`
	IsMock            bool     `json:"is_mock,omitempty"`
}

func (c Card) complete() bool {
	return c.Title != "" && len(c.YourRights) > 0 && len(c.DoNext) > 0
}
