// Package gemini talks to Gemini's OpenAI-compatible chat completion
// endpoint. It owns every network exchange with the AI service and maps
// failures into the typed errors of the output port.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"email-triage/internal/application/port/output"
)

var _ output.LLMPort = (*Adapter)(nil)

type Adapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  output.LoggerPort // optional; enables HTTP round-trip logging
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai",
		Model:   model,
		Timeout: 30 * time.Second,
	}
}

// New validates the configuration and builds the adapter. A missing field
// fails here, before any network call.
func New(cfg Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, &output.ConfigurationError{Field: "api_key"}
	}
	if cfg.BaseURL == "" {
		return nil, &output.ConfigurationError{Field: "base_url"}
	}
	if cfg.Model == "" {
		return nil, &output.ConfigurationError{Field: "model"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Logger != nil {
		httpClient.Transport = &loggingTransport{
			base:   http.DefaultTransport,
			logger: cfg.Logger,
		}
	}
	clientCfg.HTTPClient = httpClient

	return &Adapter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}, nil
}

// Complete performs exactly one chat completion round trip.
func (a *Adapter) Complete(ctx context.Context, req output.CompletionRequest) (*output.CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = a.model
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, mapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &output.DecodeError{Reason: "no choices in response"}
	}

	return &output.CompletionResponse{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
	}, nil
}

// mapError sorts a go-openai failure into the error taxonomy. API-level
// rejections carry an HTTP status; everything the client could not even
// parse as a status is either a decode problem or the network itself.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if isAuthStatus(apiErr.HTTPStatusCode) {
			return &output.AuthenticationError{
				StatusCode: apiErr.HTTPStatusCode,
				Message:    apiErr.Message,
			}
		}
		code := ""
		if apiErr.Code != nil {
			code = fmt.Sprint(apiErr.Code)
		}
		return &output.ServiceError{
			StatusCode: apiErr.HTTPStatusCode,
			Code:       code,
			Message:    apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if isAuthStatus(reqErr.HTTPStatusCode) {
			return &output.AuthenticationError{
				StatusCode: reqErr.HTTPStatusCode,
				Message:    reqErr.Error(),
			}
		}
		return &output.ServiceError{
			StatusCode: reqErr.HTTPStatusCode,
			Message:    reqErr.Error(),
		}
	}

	var synErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &synErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &output.DecodeError{Reason: "response body is not valid JSON", Err: err}
	}

	return &output.TransportError{Err: err}
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
