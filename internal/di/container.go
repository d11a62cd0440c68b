package di

import (
	"fmt"

	"email-triage/internal/application/port/input"
	"email-triage/internal/application/port/output"
	"email-triage/internal/infrastructure/config"
	"email-triage/internal/infrastructure/llm/gemini"
	"email-triage/internal/infrastructure/logger"
	"email-triage/internal/usecase/classifier"
)

type Container struct {
	Config     *config.Config
	Logger     output.LoggerPort
	LLM        output.LLMPort
	Classifier input.EmailClassifier
}

func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.NewZapAdapter(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := gemini.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout(),
	}
	if cfg.Debug {
		llmCfg.Logger = log
	}
	llm, err := gemini.New(llmCfg)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	uc := classifier.New(llm, log)

	return &Container{
		Config:     cfg,
		Logger:     log,
		LLM:        llm,
		Classifier: uc,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
