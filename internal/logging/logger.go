package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = newLogger(level)
	// exit is swapped in tests so Fatal can be exercised.
	exit = defaultExit
)

func defaultExit(code int) { os.Exit(code) }

func newLogger(lvl zap.AtomicLevel) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stdout), lvl)
	return zap.New(core)
}

// SetLevel changes the minimum level that is written. Unknown names are
// rejected and the current level is kept.
func SetLevel(name string) error {
	return level.UnmarshalText([]byte(name))
}

// Use replaces the underlying zap logger. Intended for tests.
func Use(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	l := logger
	mu.RUnlock()
	_ = l.Sync()
}

func zapFields(fields Fields, err error) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	return out
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs verbose diagnostics, such as per-turn resolution details.
func Debug(msg string, fields Fields) {
	current().Debug(msg, zapFields(fields, nil)...)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	current().Info(msg, zapFields(fields, nil)...)
}

// Warn logs a recoverable problem.
func Warn(msg string, err error, fields Fields) {
	current().Warn(msg, zapFields(fields, err)...)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	current().Error(msg, zapFields(fields, err)...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	l := current()
	l.Error(msg, zapFields(fields, err)...)
	_ = l.Sync()
	exit(1)
}
