package debug

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "LAYOUT2D_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens the debug log at path for appending. If path is empty, uses
// "debug.log" in the current directory. Calling Init again switches files.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// FromEnv calls Init with the path in LAYOUT2D_DEBUG. It reports whether
// logging was enabled.
func FromEnv() (bool, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false, nil
	}
	if err := Init(path); err != nil {
		return false, err
	}
	return true, nil
}

// Enabled reports whether a debug log file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns a logger writing to the debug file at debug level. When no
// file is open the logger discards everything.
func Logger() *slog.Logger {
	return slog.New(Handler())
}

// Handler returns the slog handler backing Logger.
func Handler() slog.Handler {
	return fileHandler{}
}

// fileHandler formats through a text handler bound to the current file so
// that Init and Close take effect on loggers created earlier. Attrs and
// groups are replayed in the order they were added.
type fileHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (h fileHandler) Enabled(context.Context, slog.Level) bool {
	return Enabled()
}

func (h fileHandler) Handle(ctx context.Context, r slog.Record) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	var inner slog.Handler = slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	for _, op := range h.ops {
		inner = op(inner)
	}
	if err := inner.Handle(ctx, r); err != nil {
		return err
	}
	return logFile.Sync()
}

func (h fileHandler) with(op func(slog.Handler) slog.Handler) fileHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return fileHandler{ops: append(ops, op)}
}

func (h fileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(inner slog.Handler) slog.Handler { return inner.WithAttrs(attrs) })
}

func (h fileHandler) WithGroup(name string) slog.Handler {
	return h.with(func(inner slog.Handler) slog.Handler { return inner.WithGroup(name) })
}
