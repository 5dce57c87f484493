package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/skala-ium/events/pkg/ctxdata"
)

type loggerKey struct{}

const (
	requestID = "request_id"
	eventID   = "event_id"
)

var loggerKeyInstance = loggerKey{}

type Logger struct {
	ZapLogger *zap.Logger
}

func New(zapLogger *zap.Logger) *Logger {
	return &Logger{ZapLogger: zapLogger}
}

// NewFromEnv builds a production logger unless development output is requested.
func NewFromEnv(development bool) (*Logger, error) {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if development {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return New(zapLogger), nil
}

func NewNop() *Logger {
	return New(zap.NewNop())
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKeyInstance, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerKeyInstance).(*Logger)
	return logger, ok
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.ZapLogger.Debug(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.ZapLogger.Info(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.ZapLogger.Warn(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.ZapLogger.Error(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.ZapLogger.Fatal(msg, contextFields(ctx, fields)...)
}

func (l *Logger) Sync() error {
	return l.ZapLogger.Sync()
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{ZapLogger: l.ZapLogger.With(fields...)}
}

func contextFields(ctx context.Context, fields []zap.Field) []zap.Field {
	if ctx == nil {
		return fields
	}
	if traceID, ok := ctxdata.GetTraceID(ctx); ok {
		fields = append(fields, zap.String(requestID, traceID))
	}
	if id, ok := ctxdata.GetEventID(ctx); ok {
		fields = append(fields, zap.String(eventID, id))
	}
	return fields
}
