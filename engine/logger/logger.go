// Package logger holds the engine-wide structured logger. Every engine package logs through Logger() so that
// applications can redirect or silence engine output with a single SetLogger call.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	level   = new(slog.LevelVar)
	current atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	current.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Logger returns the logger currently installed for the engine.
func Logger() *slog.Logger {
	return current.Load()
}

// SetLogger replaces the engine logger. Passing nil installs a logger that discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	current.Store(l)
}

// SetLevel changes the minimum level of the default stderr logger.
// Loggers installed through SetLogger keep their own level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps a settings string ("debug", "info", "warn", "error") onto a slog level.
// Unknown or empty values fall back to Info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
