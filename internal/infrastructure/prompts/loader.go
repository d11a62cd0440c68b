package prompts

import (
	_ "embed"
)

//go:embed classify.txt
var ClassifyPrompt string
