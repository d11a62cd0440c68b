package env

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"email-triage/internal/application/port/output"
)

var _ output.ConfigPort = (*Service)(nil)

// Service reads settings from process environment variables, optionally
// seeded from a .env file.
type Service struct{}

func NewService() *Service {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file found (this is OK for CI/CD)")
	}
	return &Service{}
}

func (s *Service) Get(key string) string {
	return os.Getenv(key)
}

func (s *Service) GetWithDefault(key string, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func (s *Service) GetBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (s *Service) GetInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
