package models

// FeeType describes how a referral contact charges.
type FeeType string

const (
	FeeFree         FeeType = "free"
	FeeSlidingScale FeeType = "sliding_scale"
	FeeConsultation FeeType = "consultation"
	FeeFixed        FeeType = "fixed"
)

// Label returns the user-facing fee label, or "" for unknown fee types.
func (f FeeType) Label() string {
	switch f {
	case FeeFree:
		return "🆓 Free"
	case FeeSlidingScale:
		return "💰 Sliding Scale"
	case FeeConsultation:
		return "💵 Consultation Fee"
	case FeeFixed:
		return "💵 Fixed Fee"
	default:
		return ""
	}
}

// ReferralContact is a lawyer, legal-aid body or NGO from the static directory.
type ReferralContact struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Area      string   `json:"area"`
	Phone     string   `json:"phone"`
	FeeType   FeeType  `json:"fee_type"`
	IsNGO     bool     `json:"is_ngo"`
	Languages []string `json:"languages"`
}

// JurisdictionRecord is the administrative area a message was resolved to.
type JurisdictionRecord struct {
	State    string `json:"state"`
	District string `json:"district"`
	Area     string `json:"area"`
	Display  string `json:"display"`
}
