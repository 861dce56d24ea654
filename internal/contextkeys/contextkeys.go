// Package contextkeys хранит значения уровня запроса (логгер, trace_id) в context.Context.
package contextkeys

import (
	"context"

	"shortlet-service/internal/core/port"
)

type (
	loggerKey  struct{}
	traceIDKey struct{}
)

// ContextWithLogger кладет логгер запроса в контекст
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext возвращает логгер запроса или "немой" логгер, если его нет
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey{}).(port.LoggerPort); ok {
		return logger
	}
	return silentLogger{}
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext возвращает "" если trace_id не выставлен
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

type silentLogger struct{}

func (silentLogger) Info(string, port.Fields) {}
func (silentLogger) Warn(string, port.Fields) {}
func (silentLogger) Error(string, error, port.Fields) {}
func (silentLogger) Debug(string, port.Fields) {}
func (s silentLogger) WithFields(port.Fields) port.LoggerPort { return s }
