// Package config assembles the process-wide settings from an optional YAML
// file and environment variables. Environment values win over file values.
// The result is validated once at startup and read-only afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"email-triage/internal/application/port/output"
)

const (
	// Gemini's OpenAI-compatible surface; any compatible gateway works.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel   = "gemini-2.5-flash"

	// Single attempt per call, bounded by this timeout. The upstream docs
	// leave the value open; 30s covers slow completions without hanging a
	// request handler indefinitely.
	DefaultTimeoutSeconds = 30

	DefaultHTTPAddr = ":8080"
)

type Config struct {
	APIKey         string   `yaml:"api_key" validate:"required"`
	BaseURL        string   `yaml:"base_url" validate:"required,url"`
	Model          string   `yaml:"model" validate:"required"`
	TimeoutSeconds int      `yaml:"timeout_seconds" validate:"gt=0"`
	HTTPAddr       string   `yaml:"http_addr" validate:"required"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Debug          bool     `yaml:"debug"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load builds the configuration: defaults, then the YAML file named by
// TRIAGE_CONFIG (if any), then environment overrides, then validation.
func Load(envs output.ConfigPort) (*Config, error) {
	cfg := &Config{
		BaseURL:        DefaultBaseURL,
		Model:          DefaultModel,
		TimeoutSeconds: DefaultTimeoutSeconds,
		HTTPAddr:       DefaultHTTPAddr,
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	if path := envs.Get("TRIAGE_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if v := envs.Get("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := envs.Get("GEMINI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := envs.Get("GEMINI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := envs.Get("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := envs.Get("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitOrigins(v)
	}
	cfg.TimeoutSeconds = envs.GetInt("LLM_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.Debug = envs.GetBool("LLM_DEBUG", cfg.Debug)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &output.ConfigurationError{Field: fieldName(verrs[0])}
	}
	return &output.ConfigurationError{Field: err.Error()}
}

// fieldName maps a validator field back to its env/yaml spelling.
func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "APIKey":
		return "api_key"
	case "BaseURL":
		return "base_url"
	case "Model":
		return "model"
	case "TimeoutSeconds":
		return "timeout_seconds"
	case "HTTPAddr":
		return "http_addr"
	default:
		return strings.ToLower(fe.Field())
	}
}

func splitOrigins(v string) []string {
	parts := strings.Split(v, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
