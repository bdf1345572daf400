package utils

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKeyLog struct{}

// NewLogger builds the process logger. format is "json" or "text".
func NewLogger(level, format string) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stdout

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.Level = lvl

	if strings.EqualFold(format, "text") {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	} else {
		log.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
		}
	}
	return log
}

// WithLogger stores a request-scoped logger in ctx.
func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, ctxKeyLog{}, l)
}

// LoggerFrom returns the logger stored by WithLogger, or the standard logger.
func LoggerFrom(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKeyLog{}).(logrus.FieldLogger); ok && l != nil {
			return l
		}
	}
	return logrus.StandardLogger()
}
