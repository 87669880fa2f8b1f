package logger

import (
	"context"

	"github.com/muhammadheryan/agri-market/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// Init builds the global logger. Production gets JSON output, everything else a colored console.
func Init(environment string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	globalLogger = built.With(zap.String("service", "agri-market"))
	return nil
}

// Get returns the global logger
func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewProduction()
	}
	return globalLogger
}

// Close flushes buffered entries.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// ContextFields extracts request id and authenticated user id, when present.
func ContextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields := make([]zap.Field, 0, 2)
	if rid, ok := ctx.Value(constant.RequestIDKey).(string); ok && rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid, ok := ctx.Value(constant.UserIDKey).(uint64); ok {
		fields = append(fields, zap.Uint64("user_id", uid))
	}
	return fields
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

// ErrorCtx logs at error level with request-scoped fields attached.
func ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	Get().Error(msg, append(ContextFields(ctx), fields...)...)
}

// InfoCtx logs at info level with request-scoped fields attached.
func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	Get().Info(msg, append(ContextFields(ctx), fields...)...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
