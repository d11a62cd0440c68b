package output

import "context"

// LLMPort is the boundary to the external AI service. One Complete call is
// one network attempt; callers that want retries re-invoke it themselves.
type LLMPort interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

type CompletionRequest struct {
	Prompt      string
	Model       string // empty means the adapter's configured default
	Temperature float32
}

type CompletionResponse struct {
	Text  string
	Model string
}
