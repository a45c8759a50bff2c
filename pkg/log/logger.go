package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu sync.Mutex
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or fallback)
// at the specified level.
//
// path: Log file path. If empty, logs go to fallback.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
//
// The returned Closer releases the log file, if one was opened.
func Init(path string, level string, fallback io.Writer) (io.Closer, error) {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	handler := slog.NewTextHandler(w, opts)
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a supported log level.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
