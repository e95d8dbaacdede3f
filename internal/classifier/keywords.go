package classifier

import "github.com/xaenox/nyaymitra-bot/internal/models"

// categoryKeywords holds the phrases counted for each category.
var categoryKeywords = map[models.Category][]string{
	models.CategoryFamily: {
		"divorce", "marriage", "alimony", "custody", "maintenance",
		"domestic violence", "wife", "husband", "separation", "dowry",
		"matrimonial", "child support",
	},
	models.CategoryProperty: {
		"rent", "tenant", "landlord", "eviction", "property", "land",
		"house", "flat", "lease", "agreement", "possession", "real estate",
		"rera", "builder",
	},
	models.CategoryLabour: {
		"salary", "wage", "job", "employer", "termination", "fired",
		"pf", "provident fund", "esic", "working hours", "overtime",
		"labour", "worker", "migrant",
	},
	models.CategoryCriminal: {
		"fir", "police", "arrest", "bail", "complaint", "assault",
		"theft", "fraud", "cheating", "case", "crime", "accused",
		"harassment", "threat",
	},
	models.CategoryConsumer: {
		"consumer", "product", "defect", "refund", "complaint",
		"e-commerce", "online shopping", "amazon", "flipkart",
		"warranty", "service", "rera", "cheated",
	},
	models.CategoryCyber: {
		"cyber", "online fraud", "hacked", "phishing", "upi",
		"bank fraud", "otp", "scam", "social media", "fake account",
		"password", "data", "it act",
	},
	models.CategoryEmployment: {
		"sexual harassment", "posh", "workplace", "wrongful termination",
		"employment", "hr", "maternity leave", "discrimination",
	},
	models.CategoryHumanRights: {
		"police atrocity", "torture", "dalit", "caste", "discrimination",
		"human rights", "child labour", "bonded labour", "trafficking",
	},
}
