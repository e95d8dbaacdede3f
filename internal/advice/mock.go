package advice

import (
	"fmt"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

var cannedAdvice = map[models.Category]string{
	models.CategoryFamily: "🏠 *Family Law — Your Rights in India*\n\n" +
		"• *Domestic Violence:* File a complaint under the Protection of Women from Domestic Violence Act, 2005. " +
		"Contact your local Protection Officer or the police.\n" +
		"• *Divorce:* Can be filed under the Hindu Marriage Act or the Special Marriage Act. " +
		"Mutual consent divorce usually takes 6-18 months.\n" +
		"• *Maintenance:* Spouses and children can claim maintenance under Section 125 CrPC.\n\n" +
		"📍 *Next Steps:*\n" +
		"1️⃣ Write down every incident with dates\n" +
		"2️⃣ Visit your nearest Family Court\n" +
		"3️⃣ Contact a legal aid lawyer for a free first consultation",
	models.CategoryProperty: "🏗️ *Property/Rent Law — Your Rights*\n\n" +
		"• *Rent Disputes:* The Karnataka Rent Act protects tenants. " +
		"A landlord cannot evict you without proper notice.\n" +
		"• *Illegal Eviction:* Complain to the Rent Controller for your area.\n" +
		"• *Property Fraud:* Register an FIR and file a civil suit for recovery.\n" +
		"• *Builder Disputes:* File a RERA complaint on karera.karnataka.gov.in\n\n" +
		"📍 *Next Steps:*\n" +
		"1️⃣ Keep the agreement and every rent receipt safe\n" +
		"2️⃣ Send a legal notice first\n" +
		"3️⃣ Approach the Civil Court or Consumer Commission",
	models.CategoryLabour: "⚒️ *Labour Law — Your Rights as a Worker*\n\n" +
		"• *Unpaid Wages:* Complain to the Labour Commissioner under the Payment of Wages Act, 1936.\n" +
		"• *Wrongful Termination:* The Industrial Disputes Act, 1947 requires notice or pay in lieu.\n" +
		"• *PF Issues:* Raise a grievance on the EPFO portal (epfindia.gov.in)\n" +
		"• *ESIC Benefits:* Contact your nearest ESIC office.\n\n" +
		"📍 *Next Steps:*\n" +
		"1️⃣ Collect payslips, the appointment letter and any messages\n" +
		"2️⃣ Visit the Karnataka Labour Department office\n" +
		"3️⃣ File an online complaint at labour.karnataka.gov.in",
	models.CategoryCriminal: "🚔 *Criminal Law — Know Your Rights*\n\n" +
		"• *Filing an FIR:* Police must register your FIR for a cognizable offence. " +
		"If they refuse, write to the Superintendent of Police or approach the Magistrate.\n" +
		"• *Arrest Rights:* You must be told the grounds of arrest, may consult a lawyer, " +
		"and must be produced before a Magistrate within 24 hours.\n" +
		"• *Bail:* For bailable offences bail is a right.\n\n" +
		"📍 *Next Steps:*\n" +
		"1️⃣ Go to the nearest police station and ask for FIR registration\n" +
		"2️⃣ Take a free copy of the FIR\n" +
		"3️⃣ If someone is arrested, call a lawyer immediately",
	models.CategoryCyber: "💻 *Cyber Crime — Protect Yourself*\n\n" +
		"• *Online Fraud/UPI Scam:* Report immediately at cybercrime.gov.in or call 1930\n" +
		"• *Hacking/Data Theft:* Complain under Sections 43 and 66 of the IT Act, 2000\n" +
		"• *Social Media Harassment:* The IT Act and criminal intimidation provisions apply\n\n" +
		"📍 *Next Steps:*\n" +
		"1️⃣ Do NOT share any more OTPs or personal details\n" +
		"2️⃣ Call your bank now to freeze the transaction\n" +
		"3️⃣ File a complaint at cybercrime.gov.in or the nearest Cyber Police Station\n" +
		"4️⃣ Take screenshots of all evidence",
}

// fallbackAdvice returns canned advice for the category, or general legal-aid
// guidance mentioning the jurisdiction.
func fallbackAdvice(jurisdiction string, category models.Category) string {
	if text, ok := cannedAdvice[category]; ok {
		return text
	}

	return fmt.Sprintf("📋 *Legal Information for: %s*\n\n", jurisdiction) +
		"I understand you need legal help. Here's what I can tell you:\n\n" +
		"Indian citizens have strong constitutional rights and access to free legal aid. " +
		"The Karnataka State Legal Services Authority provides free legal help to:\n" +
		"• Women, children and senior citizens\n" +
		"• SC/ST community members\n" +
		"• People with disabilities\n" +
		"• Those earning below ₹3 lakh a year\n\n" +
		"📍 *Immediate Options:*\n" +
		"1️⃣ Call KSLSA: 080-2211-1714 (free legal aid)\n" +
		"2️⃣ National Legal Services: 15100 (NALSA toll-free)\n" +
		"3️⃣ Visit the legal services clinic at your nearest District Court"
}
