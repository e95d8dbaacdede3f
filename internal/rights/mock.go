package rights

// cannedCards are served when the model is unavailable or returns an unusable card.
var cannedCards = map[string]Card{
	"arrested": {
		Title:            "🛡️ Know Your Rights: If You Are Arrested",
		SituationSummary: "You have been arrested or detained by police. Here are your fundamental rights.",
		YourRights: []string{
			"Right to know the grounds of arrest (Section 50, CrPC)",
			"Right to a lawyer immediately (Article 22(1), Constitution)",
			"Right to be produced before a Magistrate within 24 hours (Article 22(2))",
			"Right to inform a family member or friend (Section 50A, CrPC)",
			"Right to free legal aid if you can't afford a lawyer (Article 39A)",
			"Right to remain silent (Article 20(3), Constitution)",
			"Right to medical examination (Section 54, CrPC)",
		},
		TheyCannot: []string{
			"Police CANNOT arrest without informing you of the reason",
			"Police CANNOT use torture or third-degree methods (DK Basu guidelines)",
			"Police CANNOT keep you for more than 24 hours without a Magistrate's order",
			"Police CANNOT force you to confess; confessions to police are inadmissible",
			"Police CANNOT deny you access to a lawyer",
			"Police CANNOT handcuff you without a court order (in most cases)",
		},
		DoNext: []string{
			"Stay calm and do NOT resist arrest",
			"Ask for the arrest memo with date, time, and reason",
			"Immediately inform a family member or friend",
			"Call NALSA Legal Aid Helpline: 15100 for free legal help",
			"Do NOT sign any blank papers or make any statement",
			"Request to be produced before the nearest Magistrate",
			"Apply for bail; it is your right for bailable offences",
		},
		EmergencyContacts: []string{
			"NALSA Legal Aid Helpline: 15100 (Toll-Free)",
			"National Human Rights Commission: 1800-345-4545",
			"Women's Helpline: 181 (if applicable)",
			"Karnataka SLSA: 080-2235-0202",
		},
		RelevantLaws: []string{
			"Article 22: Protection against arrest and detention (Constitution)",
			"Section 41A, CrPC: Notice before arrest in certain cases",
			"Section 50, CrPC: Right to be informed of grounds of arrest",
			"Section 50A, CrPC: Right to inform someone about arrest",
			"DK Basu vs State of West Bengal: Supreme Court guidelines on arrest",
		},
	},
	"evicted": {
		Title:            "🛡️ Know Your Rights: If You're Being Evicted",
		SituationSummary: "Your landlord is trying to evict you. You have strong legal protections.",
		YourRights: []string{
			"Right to a proper written eviction notice (Rent Control Act)",
			"Right to continue living until a court order is obtained",
			"Right to get back your security deposit as per agreement",
			"Right to essential services (water, electricity) even during dispute",
			"Right to file a counter-claim if landlord is in violation",
			"Right to 15 days minimum notice before eviction proceedings",
		},
		TheyCannot: []string{
			"Landlord CANNOT lock you out or forcibly evict you",
			"Landlord CANNOT cut off water or electricity as pressure",
			"Landlord CANNOT enter your premises without prior notice",
			"Landlord CANNOT increase rent arbitrarily mid-tenancy",
			"Landlord CANNOT evict without a court order",
		},
		DoNext: []string{
			"Do NOT vacate immediately; you have legal protection",
			"Keep all rent receipts and rental agreement safely",
			"Send a written reply to the eviction notice",
			"File complaint with Rent Controller in your jurisdiction",
			"Contact NALSA for free legal aid: 15100",
			"Document everything: photos of property, all communications",
		},
		EmergencyContacts: []string{
			"NALSA Legal Aid Helpline: 15100 (Toll-Free)",
			"Karnataka Rent Controller Office: Local Civil Court",
			"Legal Services Authority Karnataka: 080-2235-0202",
		},
		RelevantLaws: []string{
			"Karnataka Rent Control Act, 1999",
			"Transfer of Property Act, 1882: Section 106 (termination of lease)",
			"Indian Contract Act: Section 73 (breach of agreement)",
			"CPC Order 39: Injunction against illegal eviction",
		},
	},
	"fired": {
		Title:            "🛡️ Know Your Rights: If You Were Fired",
		SituationSummary: "You have been terminated from your job. Know your legal protections as a worker.",
		YourRights: []string{
			"Right to written notice or pay in lieu (Industrial Disputes Act)",
			"Right to reason for termination in writing",
			"Right to full and final settlement within 2 days",
			"Right to gratuity if you've worked 5+ years (Gratuity Act)",
			"Right to PF withdrawal (EPF & MP Act, 1952)",
			"Right to challenge wrongful termination in Labour Court",
		},
		TheyCannot: []string{
			"Employer CANNOT fire without notice or compensation",
			"Employer CANNOT withhold your earned salary",
			"Employer CANNOT deny your PF or gratuity benefits",
			"Employer CANNOT terminate during maternity leave",
			"Employer CANNOT fire you for union activity (Section 25N)",
			"Employer CANNOT discriminate based on caste, religion, or gender",
		},
		DoNext: []string{
			"Request a written termination letter with reasons",
			"Collect copies of appointment letter, payslips, and all HR communications",
			"Calculate pending dues: salary, bonus, leave encashment, gratuity",
			"File complaint with Labour Commissioner if dues are unpaid",
			"File EPFO complaint for PF issues: epfindia.gov.in",
			"Contact a labour lawyer; free aid available via NALSA: 15100",
		},
		EmergencyContacts: []string{
			"NALSA Legal Aid Helpline: 15100 (Toll-Free)",
			"Karnataka Labour Commissioner: 080-2286-1386",
			"EPFO Helpline: 1800-118-005",
			"POSH (Sexual Harassment): Internal/Local Complaints Committee",
		},
		RelevantLaws: []string{
			"Industrial Disputes Act, 1947: Section 25F (conditions for retrenchment)",
			"Payment of Gratuity Act, 1972",
			"Payment of Wages Act, 1936",
			"EPF & Miscellaneous Provisions Act, 1952",
			"Maternity Benefit Act, 1961",
		},
	},
	"cheated": {
		Title:            "🛡️ Know Your Rights: If You Were Cheated",
		SituationSummary: "You were cheated by a vendor or are a victim of consumer fraud. You have strong consumer rights.",
		YourRights: []string{
			"Right to file a consumer complaint (Consumer Protection Act, 2019)",
			"Right to a refund, replacement, or compensation",
			"Right to file complaint online at consumerhelpline.gov.in",
			"Right to file an FIR for cheating (Section 420, IPC)",
			"Right to compensation for defective goods or deficient services",
			"Right to be heard before a Consumer Forum without a lawyer",
		},
		TheyCannot: []string{
			"Vendor CANNOT sell defective or expired products",
			"Vendor CANNOT refuse a refund for defective goods",
			"Vendor CANNOT mislead with false advertising",
			"E-commerce platforms CANNOT deny grievance redressal",
			"Vendor CANNOT impose unfair contract terms",
		},
		DoNext: []string{
			"Collect all evidence: bills, receipts, photos, chat screenshots",
			"Send a written complaint to the vendor first (keep proof)",
			"File complaint on National Consumer Helpline: 1800-11-4000",
			"File online at consumerhelpline.gov.in or edaakhil.nic.in",
			"For amounts up to ₹1 crore, file in District Consumer Forum",
			"For UPI/online fraud, also file on cybercrime.gov.in",
		},
		EmergencyContacts: []string{
			"National Consumer Helpline: 1800-11-4000 (Toll-Free)",
			"NALSA Legal Aid: 15100",
			"Cyber Crime Helpline: 1930 (for online fraud)",
			"Karnataka Consumer Forum: District-level offices",
		},
		RelevantLaws: []string{
			"Consumer Protection Act, 2019",
			"Section 420, IPC: Cheating and dishonestly inducing delivery of property",
			"E-Commerce Rules, 2020: Consumer Protection",
			"IT Act, 2000: Section 66D (cheating using computer resources)",
		},
	},
}

// cannedCard returns a copy of the canned card for s, stamped with the request.
func cannedCard(s Situation, language string) Card {
	card := cannedCards[s.ID]
	card.YourRights = append([]string(nil), card.YourRights...)
	card.TheyCannot = append([]string(nil), card.TheyCannot...)
	card.DoNext = append([]string(nil), card.DoNext...)
	card.EmergencyContacts = append([]string(nil), card.EmergencyContacts...)
	card.RelevantLaws = append([]string(nil), card.RelevantLaws...)
	card.Situation = s.ID
	card.Language = language
	card.Icon = s.Icon
	card.IsMock = true
	return card
}
