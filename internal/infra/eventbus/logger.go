package eventbus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
)

// KratosLoggerAdapter routes Watermill logs through the Kratos logger.
type KratosLoggerAdapter struct {
	logger *log.Helper
	fields watermill.LogFields
}

// NewKratosLoggerAdapter creates a new Watermill logger adapter.
func NewKratosLoggerAdapter(logger log.Logger) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: log.NewHelper(log.With(logger, "module", "eventbus")),
		fields: watermill.LogFields{},
	}
}

func (l *KratosLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.log(log.LevelError, msg, fields.Add(watermill.LogFields{"error": err}))
}

func (l *KratosLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.log(log.LevelInfo, msg, fields)
}

func (l *KratosLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.log(log.LevelDebug, msg, fields)
}

// Trace is folded into debug; Kratos has no trace level.
func (l *KratosLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.log(log.LevelDebug, msg, fields)
}

func (l *KratosLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: l.logger,
		fields: l.fields.Add(fields),
	}
}

func (l *KratosLoggerAdapter) log(level log.Level, msg string, fields watermill.LogFields) {
	all := l.fields.Add(fields)
	keyvals := make([]any, 0, len(all)*2+2)
	keyvals = append(keyvals, "msg", msg)
	for k, v := range all {
		keyvals = append(keyvals, k, v)
	}
	l.logger.Log(level, keyvals...)
}
