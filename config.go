package depot

import (
	"context"
	"log/slog"

	"github.com/TheBitDrifter/bark"
)

// Config holds the package-wide defaults new worlds start from.
var Config config

type config struct {
	logger    Logger
	generator Generator
}

// SetLogger sets the logger used by worlds created without WithLogger.
// Passing nil restores the bark logger for the "depot" component.
func (c *config) SetLogger(l Logger) {
	c.logger = l
}

// SetGenerator sets the id generator shared by worlds created without
// WithGenerator. Passing nil restores the process-wide counter.
func (c *config) SetGenerator(g Generator) {
	c.generator = g
}

func (c *config) defaultLogger() Logger {
	if c.logger == nil {
		return NewSlogLogger(nil)
	}
	return c.logger
}

func (c *config) defaultGenerator() Generator {
	if c.generator == nil {
		return processCounter
	}
	return c.generator
}

// processCounter backs every world that was not given its own generator, so
// ids stay unique across worlds in one process.
var processCounter = NewCounter()

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger to Logger. A nil logger yields bark's
// logger for the "depot" component; configure it with bark.Wake before the
// first world is created.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = bark.For("depot")
	}
	return slogLogger{l: l}
}

func (s slogLogger) With(key string, value any) Logger {
	return slogLogger{l: s.l.With(key, value)}
}

func (s slogLogger) Debug(msg string, args ...any) {
	if !s.l.Enabled(context.Background(), bark.LevelDebug) {
		return
	}
	s.l.Debug(msg, args...)
}

func (s slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }
