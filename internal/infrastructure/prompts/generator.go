package prompts

import (
	"github.com/tmc/langchaingo/prompts"
)

// RenderClassifyPrompt injects the email text into the classification
// template.
func RenderClassifyPrompt(baseTemplate, emailText string) (string, error) {
	tmpl := prompts.NewPromptTemplate(baseTemplate, []string{"email_text"})
	return tmpl.Format(map[string]any{
		"email_text": emailText,
	})
}
