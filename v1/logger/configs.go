package logger

// Level identifies a logging severity understood by NewLoggerClient.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config configures a Logger instance.
type Config struct {
	// Level is the minimum severity that will be emitted.
	Level Level

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string

	// EnableTracing turns on automatic trace_id/span_id extraction in the
	// *WithContext methods.
	EnableTracing bool
}
