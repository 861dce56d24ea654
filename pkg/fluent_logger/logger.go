package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config - параметры подключения к Fluent Bit
type Config struct {
	Host      string
	Port      int
	TagPrefix string // обычно имя сервиса
	// Async - не блокировать запрос, если Fluent Bit недоступен
	Async bool
}

// NewClient создает клиент Fluent Bit. При Async записи отправляются из фоновой горутины.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	client, err := fluent.New(fluent.Config{
		FluentHost:   cfg.Host,
		FluentPort:   cfg.Port,
		TagPrefix:    cfg.TagPrefix,
		Async:        cfg.Async,
		Timeout:      3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}
	return client, nil
}
