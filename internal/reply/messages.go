package reply

import "strings"

// Disclaimer ends every reply the bot sends.
const Disclaimer = "\n\n⚠️ *Disclaimer:* This is general information only and does NOT constitute " +
	"legal advice. Laws may have changed. Always consult a qualified lawyer for your " +
	"specific situation. NyayMitra is not liable for any decisions made based on " +
	"this information."

// WelcomeMessage answers empty messages and greetings.
const WelcomeMessage = "🙏 *Welcome to NyayMitra — आपका कानूनी साथी!*\n\n" +
	"I can help you understand your legal rights in India.\n\n" +
	"💬 *How to use:*\n" +
	"• Send your legal question in text\n" +
	"• Share your location for local lawyer suggestions\n" +
	"• Send a voice note and I'll transcribe it\n" +
	"• Send a photo of a legal document for analysis\n\n" +
	"📍 Please share your city/area so I can give you relevant advice.\n\n" +
	"_Example: 'My landlord won't return my deposit. I'm in Koramangala, Bengaluru.'_" +
	Disclaimer

// ApologyMessage is sent when processing fails unexpectedly.
const ApologyMessage = "⚠️ Sorry, I encountered an error processing your message. " +
	"Please try again or rephrase your query.\n\n" +
	"📞 For urgent legal help: *NALSA Toll-Free: 15100*" +
	Disclaimer

// LocationNoted acknowledges a shared location and asks for the question.
func LocationNoted(location string) string {
	return "📍 *Location noted:* " + location + "\n\n" +
		"Now please send your legal question and I'll provide advice " +
		"relevant to your area along with local lawyer contacts." +
		Disclaimer
}

// EnsureDisclaimer appends the disclaimer unless text already ends with it.
func EnsureDisclaimer(text string) string {
	if strings.HasSuffix(text, Disclaimer) {
		return text
	}
	return text + Disclaimer
}
