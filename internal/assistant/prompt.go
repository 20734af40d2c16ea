package assistant

import (
	"strings"

	"github.com/lighthouse-program/lighthouse-api/internal/domain"
)

const promptHeader = `You are the help assistant for the Lighthouse beach cleanup volunteer program.
Answer the visitor's question using only the FAQ entries below.
If the answer is not covered by the FAQ, say you do not know and suggest using the contact form.
Keep answers short and friendly.

FAQ:`

// BuildPrompt assembles the fixed FAQ corpus into a system prompt.
func BuildPrompt(faqs []domain.Faq) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for _, faq := range faqs {
		sb.WriteString("\n\nQ: ")
		sb.WriteString(strings.TrimSpace(faq.Question))
		sb.WriteString("\nA: ")
		sb.WriteString(strings.TrimSpace(faq.Answer))
	}
	return sb.String()
}
