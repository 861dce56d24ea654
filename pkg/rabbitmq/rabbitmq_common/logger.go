package rabbitmq_common

// Logger - минимальный логгер pkg-уровня, чтобы pkg не зависел от internal
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(err error, msg string, keysAndValues ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{})        {}
func (noopLogger) Info(string, ...interface{})         {}
func (noopLogger) Warn(string, ...interface{})         {}
func (noopLogger) Error(error, string, ...interface{}) {}

func NewNoopLogger() Logger {
	return noopLogger{}
}

// Config - общая часть конфигурации издателя
type Config struct {
	URL string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errEmptyURL
	}
	return nil
}
