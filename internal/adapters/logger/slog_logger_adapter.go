package logger_adapter

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"shortlet-service/internal/core/port"

	"github.com/lmittmann/tint"
)

// SlogAdapter реализует LoggerPort поверх log/slog
type SlogAdapter struct {
	logger *slog.Logger
}

type SlogConfig struct {
	// Writer по умолчанию os.Stdout
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	// IsJSON переключает вывод на slog.JSONHandler, иначе используется tint
	IsJSON   bool
	UseColor bool
}

func NewSlogAdapter(cfg SlogConfig) port.LoggerPort {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	var handler slog.Handler
	switch {
	case cfg.IsJSON:
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
			AddSource: cfg.AddSource,
			Level:     cfg.Level,
		})
	default:
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    !cfg.UseColor,
		})
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

// toAttrs сортирует ключи, чтобы строки логов были стабильными
func toAttrs(fields port.Fields) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return attrs
}

func (a *SlogAdapter) Info(msg string, fields port.Fields) {
	a.logger.Info(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields port.Fields) {
	a.logger.Warn(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Error(msg string, err error, fields port.Fields) {
	attrs := toAttrs(fields)
	if err != nil {
		attrs = append(attrs, tint.Err(err))
	}
	a.logger.Error(msg, attrs...)
}

func (a *SlogAdapter) Debug(msg string, fields port.Fields) {
	a.logger.Debug(msg, toAttrs(fields)...)
}

func (a *SlogAdapter) WithFields(fields port.Fields) port.LoggerPort {
	return &SlogAdapter{logger: a.logger.With(toAttrs(fields)...)}
}
