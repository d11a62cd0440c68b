package input

import (
	"context"

	"email-triage/internal/domain/entity"
)

// EmailClassifier drives one triage task end to end.
type EmailClassifier interface {
	Classify(ctx context.Context, email entity.Email) (*entity.ClassificationResult, error)
}
