// Package env provides a ConfigurationPort that reads the watch configuration
// from environment variables.
//
// Variables (with the default HOTWATCH_ prefix):
//
//	HOTWATCH_PORT             listen port (default 8080)
//	HOTWATCH_WATCH_PATHS      comma-separated folders, required
//	HOTWATCH_WATCH_PATTERNS   comma-separated glob patterns (default *.class)
//	HOTWATCH_WATCH_RECURSIVE  true|false (default true)
//	HOTWATCH_WATCH_INTERVAL   Go duration or milliseconds (default 1s)
package env

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/hotwatch/internal/adapters/driven/config/schema"
	"github.com/custodia-labs/hotwatch/internal/core/domain"
	"github.com/custodia-labs/hotwatch/internal/core/ports/driven"
	"github.com/custodia-labs/hotwatch/internal/logger"
)

// Ensure Loader implements the interfaces.
var (
	_ driven.ConfigurationPort = (*Loader)(nil)
	_ driven.SourceDescriber   = (*Loader)(nil)
)

// DefaultPrefix is the environment variable prefix used by NewLoader.
const DefaultPrefix = "HOTWATCH_"

// Variable names, relative to the prefix.
const (
	KeyPort      = "PORT"
	KeyPaths     = "WATCH_PATHS"
	KeyPatterns  = "WATCH_PATTERNS"
	KeyRecursive = "WATCH_RECURSIVE"
	KeyInterval  = "WATCH_INTERVAL"
)

// Loader is an environment-based implementation of driven.ConfigurationPort.
type Loader struct {
	prefix string
	lookup func(string) (string, bool)
}

// Option configures a Loader.
type Option func(*Loader)

// WithPrefix replaces the variable prefix.
func WithPrefix(prefix string) Option {
	return func(l *Loader) { l.prefix = prefix }
}

// WithLookup replaces os.LookupEnv, mainly for tests.
func WithLookup(lookup func(string) (string, bool)) Option {
	return func(l *Loader) { l.lookup = lookup }
}

// NewLoader creates an environment loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{prefix: DefaultPrefix, lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ConfigurationSource describes the environment view.
func (l *Loader) ConfigurationSource() string {
	return "env:" + l.prefix + "*"
}

// LoadWatchConfiguration builds the configuration from environment variables.
// Without a paths variable it fails with an error matching domain.ErrConfigurationNotFound.
func (l *Loader) LoadWatchConfiguration(ctx context.Context) (*domain.WatchConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, l.fail(err)
	}

	paths := l.csv(KeyPaths)
	if len(paths) == 0 {
		return nil, l.fail(fmt.Errorf("%w: %s is not set", domain.ErrConfigurationNotFound, l.key(KeyPaths)))
	}

	logger.Get().Debug().Str("prefix", l.prefix).Strs("paths", paths).Msg("loading configuration from environment")

	port, err := l.getInt(KeyPort)
	if err != nil {
		return nil, l.fail(err)
	}
	interval, err := l.interval()
	if err != nil {
		return nil, l.fail(err)
	}
	recursive, err := l.getBool(KeyRecursive)
	if err != nil {
		return nil, l.fail(err)
	}
	patterns := l.csv(KeyPatterns)

	doc := schema.Document{Port: port, Folders: make([]schema.FolderDocument, len(paths))}
	for i, p := range paths {
		doc.Folders[i] = schema.FolderDocument{
			Path:      p,
			Interval:  interval,
			Patterns:  patterns,
			Recursive: recursive,
		}
	}

	cfg, err := schema.Build(doc)
	if err != nil {
		return nil, l.fail(err)
	}
	return cfg, nil
}

func (l *Loader) fail(err error) error {
	return domain.NewConfigurationLoadError(l.ConfigurationSource(), err)
}

// key composes the fully-qualified variable name.
func (l *Loader) key(k string) string { return l.prefix + k }

// get returns the trimmed variable or "".
func (l *Loader) get(k string) string {
	v, _ := l.lookup(l.key(k))
	return strings.TrimSpace(v)
}

// csv returns the non-empty comma-separated items of a variable.
func (l *Loader) csv(k string) []string {
	s := l.get(k)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getInt parses an integer variable; unset yields 0 so defaults apply.
func (l *Loader) getInt(k string) (int, error) {
	s := l.get(k)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", domain.ErrInvalidInput, l.key(k), s)
	}
	return v, nil
}

// getBool parses a boolean variable; unset yields nil so defaults apply.
func (l *Loader) getBool(k string) (*bool, error) {
	s := l.get(k)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidInput, l.key(k), s)
	}
	return &v, nil
}

// interval parses the interval variable as a duration or as milliseconds.
// Positive durations below a millisecond round up to 1ms so they never fall
// back to the default.
func (l *Loader) interval() (int, error) {
	s := l.get(KeyInterval)
	if s == "" {
		return 0, nil
	}
	if ms, err := strconv.Atoi(s); err == nil {
		return ms, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration (e.g., 250ms, 2s)", domain.ErrInvalidInput, l.key(KeyInterval), s)
	}
	if d > 0 && d < time.Millisecond {
		return 1, nil
	}
	return int(d / time.Millisecond), nil
}
