package logger

import "email-triage/internal/application/port/output"

var _ output.LoggerPort = NopLogger{}

// NopLogger discards all log messages. Handy for tests and optional wiring.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

func (n NopLogger) WithField(string, any) output.LoggerPort { return n }

func (NopLogger) Close() error { return nil }
