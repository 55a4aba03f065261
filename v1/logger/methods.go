package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Fields is a shorthand for the structured key-value pairs accepted by the
// logging methods.
type Fields map[string]interface{}

func toZapFields(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Debug logs at debug level with optional error and structured fields.
func (l *Logger) Debug(msg string, err error, fields Fields) {
	l.log(l.Zap.Debug, msg, err, fields)
}

// Info logs at info level with optional error and structured fields.
func (l *Logger) Info(msg string, err error, fields Fields) {
	l.log(l.Zap.Info, msg, err, fields)
}

// Warn logs at warning level with optional error and structured fields.
func (l *Logger) Warn(msg string, err error, fields Fields) {
	l.log(l.Zap.Warn, msg, err, fields)
}

// Error logs at error level with optional error and structured fields.
func (l *Logger) Error(msg string, err error, fields Fields) {
	l.log(l.Zap.Error, msg, err, fields)
}

// DebugWithContext logs at debug level, including trace/span IDs extracted
// from ctx when tracing is enabled.
func (l *Logger) DebugWithContext(ctx context.Context, msg string, err error, fields Fields) {
	l.log(l.Zap.Debug, msg, err, l.withTrace(ctx, fields))
}

// InfoWithContext logs at info level, including trace/span IDs extracted
// from ctx when tracing is enabled.
func (l *Logger) InfoWithContext(ctx context.Context, msg string, err error, fields Fields) {
	l.log(l.Zap.Info, msg, err, l.withTrace(ctx, fields))
}

// WarnWithContext logs at warning level, including trace/span IDs extracted
// from ctx when tracing is enabled.
func (l *Logger) WarnWithContext(ctx context.Context, msg string, err error, fields Fields) {
	l.log(l.Zap.Warn, msg, err, l.withTrace(ctx, fields))
}

// ErrorWithContext logs at error level, including trace/span IDs extracted
// from ctx when tracing is enabled.
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields Fields) {
	l.log(l.Zap.Error, msg, err, l.withTrace(ctx, fields))
}

func (l *Logger) log(fn func(string, ...zap.Field), msg string, err error, fields Fields) {
	zf := toZapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	fn(msg, zf...)
}

func (l *Logger) withTrace(ctx context.Context, fields Fields) Fields {
	if !l.tracingEnabled {
		return fields
	}
	span := trace.SpanContextFromContext(ctx)
	if !span.IsValid() {
		return fields
	}
	out := Fields{}
	for k, v := range fields {
		out[k] = v
	}
	out["trace_id"] = span.TraceID().String()
	out["span_id"] = span.SpanID().String()
	return out
}
