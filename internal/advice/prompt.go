package advice

import (
	"fmt"
	"strings"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

const systemPrompt = `You are NyayMitra, an empathetic legal information assistant for people in India.
Explain the user's rights and options in plain language for someone who is not a lawyer.

- Name the Indian laws, acts or sections that apply when you can.
- Give practical next steps the user can take today.
- If the situation is urgent (violence, arrest, ongoing fraud) put emergency resources first.
- Keep it under about 300 words and use simple chat formatting.
- Never predict the outcome of a specific case or discourage the user from seeing a lawyer.`

func buildPrompt(query, jurisdiction string, category models.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user is located in **%s**.", jurisdiction)
	if !category.IsNone() {
		fmt.Fprintf(&b, " The query appears to relate to **%s law**.", category)
	}
	fmt.Fprintf(&b, "\n\nUser's query: %s\n\n", query)
	b.WriteString("Please provide:\n" +
		"1. A clear explanation of their legal situation\n" +
		"2. Relevant Indian laws or acts that apply\n" +
		"3. Practical next steps they can take\n" +
		"4. Any important warnings or urgent actions if needed")
	return b.String()
}
