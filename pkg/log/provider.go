// Package log provides the default zerolog-backed Logger provider.
//
// The rest of the library obtains loggers exclusively through GetLogger and
// GetLoggerWithName, so swapping the backend (for tests, or to integrate with
// an application's own logging) is a single SetLoggerProvider call.

package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	goid3errors "github.com/YuminosukeSato/goid3/pkg/errors"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

// Debug implements Logger.Debug.
func (z *zerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.logger.Debug(), fields).Msg(msg)
}

// Info implements Logger.Info.
func (z *zerologLogger) Info(msg string, fields ...any) {
	z.emit(z.logger.Info(), fields).Msg(msg)
}

// Warn implements Logger.Warn.
func (z *zerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.logger.Warn(), fields).Msg(msg)
}

// Error implements Logger.Error.
func (z *zerologLogger) Error(msg string, fields ...any) {
	z.emit(z.logger.Error(), fields).Msg(msg)
}

// With implements Logger.With.
func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch value := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			ctx = ctx.Object(key, value)
		case error:
			ctx = ctx.Str(key, value.Error())
		default:
			ctx = ctx.Interface(key, value)
		}
	}
	return &zerologLogger{logger: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.logger.GetLevel()
}

// emit appends structured fields to a zerolog event.
// Typed errors carrying MarshalZerologObject are logged as nested objects so
// their fields (operation, node index, ...) stay machine-readable.
func (z *zerologLogger) emit(event *zerolog.Event, fields []any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch value := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			event = event.Object(key, value)
		case error:
			event = event.AnErr(key, value)
		default:
			event = event.Interface(key, value)
		}
	}
	return event
}

// toZerologLevel converts the slog-compatible Level to a zerolog level.
func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologProvider is the default LoggerProvider, writing JSON lines via
// zerolog.
type zerologProvider struct {
	mu    sync.RWMutex
	root  zerolog.Logger
	level Level
}

// newZerologProvider creates a provider writing to w at Info level.
func newZerologProvider(w io.Writer) *zerologProvider {
	root := zerolog.New(w).With().Timestamp().Logger()
	return &zerologProvider{root: root, level: LevelInfo}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *zerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{logger: p.root.Level(toZerologLevel(p.level))}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *zerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	logger := p.root.Level(toZerologLevel(p.level)).With().Str(ComponentKey, name).Logger()
	return &zerologLogger{logger: logger}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *zerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = newZerologProvider(os.Stderr)
)

// SetLoggerProvider replaces the provider used by GetLogger and
// GetLoggerWithName. Passing nil restores the zerolog default.
func SetLoggerProvider(provider LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if provider == nil {
		provider = newZerologProvider(os.Stderr)
	}
	defaultProvider = provider
}

// GetLogger returns the default logger instance.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name, e.g.
// "id3.pruner".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}

// The errors package cannot import this package, so it exposes a hook for
// routing library warnings into structured logging. Install the bridge once
// at start-up.
func init() {
	goid3errors.SetZerologWarnFunc(func(warning error) {
		GetLoggerWithName("goid3.warnings").Warn("library warning", "warning", warning)
	})
}
