package entity

import "errors"

// Category is the triage verdict for an email.
type Category string

const (
	CategoryProductive   Category = "productive"
	CategoryUnproductive Category = "unproductive"
)

// ErrEmptyEmail is returned when a classification is requested with no text.
var ErrEmptyEmail = errors.New("email text is empty")

type Email struct {
	Text string
}

// ClassificationResult carries the normalized verdict together with the
// model's verbatim answer, which API consumers display as-is.
type ClassificationResult struct {
	Email     Email
	Category  Category
	RawAnswer string
}
