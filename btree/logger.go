package btree

// Logger interface matches the implementation of slog, so a *slog.Logger can be
// passed directly. See package logger for zap and logrus adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DiscardLogger is the default logger and drops everything.
type DiscardLogger struct{}

func (d DiscardLogger) Debug(string, ...any) {}

func (d DiscardLogger) Info(string, ...any) {}

func (d DiscardLogger) Warn(string, ...any) {}

func (d DiscardLogger) Error(string, ...any) {}
