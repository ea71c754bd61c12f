// Package logger provides verbose logging for the hotwatch CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users see which configuration source
// was consulted and why.
package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Logger is the project-wide structured logger type.
type Logger = zerolog.Logger

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
	root    atomic.Pointer[zerolog.Logger]
)

func init() {
	rebuild()
}

// rebuild publishes a new root logger (caller must hold mu, or be init).
func rebuild() {
	lvl := zerolog.Disabled
	if verbose {
		lvl = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{
		Out:          output,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	l := zerolog.New(w).Level(lvl)
	root.Store(&l)
}

// Get returns the root logger for structured fields.
// It discards everything unless verbose mode is enabled.
func Get() *Logger {
	return root.Load()
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}
