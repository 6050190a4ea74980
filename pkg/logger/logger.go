// Package logger defines the logging contract shared by every coinstats package.
package logger

// Level is a logging severity
type Level int8

const (
	Disabled Level = iota - 1
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Logger is implemented by the zerolog adapter; packages only depend on this interface.
type Logger interface {
	WithField(key string, value any) Logger  // WithField returns a logger carrying the key-value pair.
	WithFields(fields map[string]any) Logger // WithFields returns a logger carrying all fields.
	WithError(err error) Logger              // WithError returns a logger carrying the error.

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any) // Fatal logs the message and then exits the program.

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}
