// Package logging holds the logger shared by the mathanim packages.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// Set installs l as the shared logger. nil restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return current.Load()
}

// ParseLevel maps debug, info, warn and error onto slog levels.
// An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
