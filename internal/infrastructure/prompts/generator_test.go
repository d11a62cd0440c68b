package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClassifyPrompt(t *testing.T) {
	rendered, err := RenderClassifyPrompt(ClassifyPrompt, "standup moved to 10am")

	require.NoError(t, err)
	assert.Contains(t, rendered, "Email: standup moved to 10am")
	assert.Contains(t, rendered, "Classification:")
	assert.Equal(t, 1, strings.Count(rendered, "standup moved to 10am"))
}

func TestRenderClassifyPrompt_EmbeddedTemplate(t *testing.T) {
	assert.Contains(t, ClassifyPrompt, `"productive"`)
	assert.Contains(t, ClassifyPrompt, `"unproductive"`)
	assert.Contains(t, ClassifyPrompt, "{{.email_text}}")
}

func TestRenderClassifyPrompt_CustomTemplate(t *testing.T) {
	rendered, err := RenderClassifyPrompt("Subject: {{.email_text}}", "lunch?")

	require.NoError(t, err)
	assert.Equal(t, "Subject: lunch?", rendered)
}
