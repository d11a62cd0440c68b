package logger

import (
	"go.uber.org/zap"

	"email-triage/internal/application/port/output"
)

var _ output.LoggerPort = (*ZapAdapter)(nil)

// ZapAdapter exposes a zap sugared logger through the LoggerPort shape
// (message plus alternating key/value args).
type ZapAdapter struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

func NewZapAdapter(debug bool) (*ZapAdapter, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{base: base, sugar: base.Sugar()}, nil
}

func (l *ZapAdapter) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *ZapAdapter) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *ZapAdapter) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *ZapAdapter) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

func (l *ZapAdapter) WithField(key string, value any) output.LoggerPort {
	return &ZapAdapter{base: l.base, sugar: l.sugar.With(key, value)}
}

func (l *ZapAdapter) Close() error {
	// Sync fails on stderr on some platforms; logs are already flushed.
	_ = l.base.Sync()
	return nil
}
