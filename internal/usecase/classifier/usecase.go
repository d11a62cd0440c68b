// Package classifier drives one triage task: render the prompt, ask the
// model once, normalize the verdict.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"email-triage/internal/application/port/input"
	"email-triage/internal/application/port/output"
	"email-triage/internal/domain/entity"
	"email-triage/internal/infrastructure/prompts"
)

var _ input.EmailClassifier = (*UseCase)(nil)

type UseCase struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func New(llm output.LLMPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		llm:    llm,
		logger: logger,
	}
}

func (uc *UseCase) Classify(ctx context.Context, email entity.Email) (*entity.ClassificationResult, error) {
	text := strings.TrimSpace(email.Text)
	if text == "" {
		return nil, entity.ErrEmptyEmail
	}

	prompt, err := prompts.RenderClassifyPrompt(prompts.ClassifyPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	uc.logger.Debug("Classifying email", "chars", len(text))

	resp, err := uc.llm.Complete(ctx, output.CompletionRequest{
		Prompt:      prompt,
		Temperature: 0.0,
	})
	if err != nil {
		uc.logger.Error("LLM request failed", "error", err)
		return nil, err
	}

	category := normalizeCategory(resp.Text)
	uc.logger.Info("Email classified", "category", category, "model", resp.Model)

	return &entity.ClassificationResult{
		Email:     entity.Email{Text: text},
		Category:  category,
		RawAnswer: strings.TrimSpace(resp.Text),
	}, nil
}

// normalizeCategory collapses the model's free-text answer to a verdict.
// "productive" is a substring of "unproductive", so the negative case is
// checked first. Anything unrecognized counts as unproductive.
func normalizeCategory(answer string) entity.Category {
	cleaned := strings.ToLower(strings.TrimSpace(answer))
	switch {
	case strings.Contains(cleaned, "unproductive"):
		return entity.CategoryUnproductive
	case strings.Contains(cleaned, "productive"):
		return entity.CategoryProductive
	default:
		return entity.CategoryUnproductive
	}
}
