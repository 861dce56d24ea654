package rabbitmq

import (
	"shortlet-service/internal/core/port"
	"shortlet-service/pkg/rabbitmq/rabbitmq_common"
)

// PkgLoggerBridge переводит вызовы pkg-логгера (пары ключ-значение) в LoggerPort
type PkgLoggerBridge struct {
	internalLogger port.LoggerPort
}

func NewPkgLoggerBridge(logger port.LoggerPort) rabbitmq_common.Logger {
	return &PkgLoggerBridge{internalLogger: logger}
}

func toFields(keysAndValues []interface{}) port.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make(port.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (b *PkgLoggerBridge) Debug(msg string, keysAndValues ...interface{}) {
	b.internalLogger.Debug(msg, toFields(keysAndValues))
}

func (b *PkgLoggerBridge) Info(msg string, keysAndValues ...interface{}) {
	b.internalLogger.Info(msg, toFields(keysAndValues))
}

func (b *PkgLoggerBridge) Warn(msg string, keysAndValues ...interface{}) {
	b.internalLogger.Warn(msg, toFields(keysAndValues))
}

func (b *PkgLoggerBridge) Error(err error, msg string, keysAndValues ...interface{}) {
	b.internalLogger.Error(msg, err, toFields(keysAndValues))
}
