package logger_adapter

import (
	"fmt"
	"log/slog"
	"time"

	"shortlet-service/internal/core/port"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// fluentPoster - то, что нужно адаптеру от *fluent.Fluent
type fluentPoster interface {
	Post(tag string, message interface{}) error
}

// FluentLoggerAdapter отправляет записи в Fluent Bit, тег = уровень записи
type FluentLoggerAdapter struct {
	client   fluentPoster
	fields   port.Fields
	minLevel slog.Level
}

func NewFluentLoggerAdapter(client *fluent.Fluent, minLevel slog.Leveler) (*FluentLoggerAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("fluent client cannot be nil")
	}
	return newFluentLoggerAdapter(client, minLevel), nil
}

func newFluentLoggerAdapter(client fluentPoster, minLevel slog.Leveler) *FluentLoggerAdapter {
	level := slog.LevelInfo
	if minLevel != nil {
		level = minLevel.Level()
	}
	return &FluentLoggerAdapter{
		client:   client,
		fields:   port.Fields{},
		minLevel: level,
	}
}

func (a *FluentLoggerAdapter) merge(fields port.Fields) port.Fields {
	merged := make(port.Fields, len(a.fields)+len(fields)+3)
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}

func (a *FluentLoggerAdapter) post(level slog.Level, msg string, fields port.Fields, err error) {
	if level < a.minLevel {
		return
	}
	record := a.merge(fields)
	if err != nil {
		record["error"] = err.Error()
	}
	tag := levelTag(level)
	record["level"] = tag
	record["message"] = msg
	record["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)

	// ошибки отправки игнорируем: логгер не должен ронять запрос
	_ = a.client.Post(tag, map[string]interface{}(record))
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warn"
	case level >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}

func (a *FluentLoggerAdapter) Info(msg string, fields port.Fields) {
	a.post(slog.LevelInfo, msg, fields, nil)
}

func (a *FluentLoggerAdapter) Warn(msg string, fields port.Fields) {
	a.post(slog.LevelWarn, msg, fields, nil)
}

func (a *FluentLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	a.post(slog.LevelError, msg, fields, err)
}

func (a *FluentLoggerAdapter) Debug(msg string, fields port.Fields) {
	a.post(slog.LevelDebug, msg, fields, nil)
}

func (a *FluentLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &FluentLoggerAdapter{
		client:   a.client,
		fields:   a.merge(fields),
		minLevel: a.minLevel,
	}
}
