package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Defaults applied by configuration adapters when a source omits a value.
const (
	// DefaultPort is the listen port used when a source does not name one.
	DefaultPort = 8080

	// DefaultInterval is the polling hint for a watched folder.
	DefaultInterval = time.Second
)

// DefaultPatterns returns the file patterns watched when a folder names none.
func DefaultPatterns() []string {
	return []string{"*.class"}
}

// FolderWatch describes one watched folder.
type FolderWatch struct {
	// Path is the filesystem path of the folder.
	Path string

	// Interval is the polling hint for collaborators that poll.
	Interval time.Duration

	// Patterns are glob patterns selecting the files of interest.
	Patterns []string

	// Recursive includes subdirectories when true.
	Recursive bool
}

// Equal reports whether two folder descriptors are structurally equal.
func (f FolderWatch) Equal(other FolderWatch) bool {
	return f.Path == other.Path &&
		f.Interval == other.Interval &&
		f.Recursive == other.Recursive &&
		slices.Equal(f.Patterns, other.Patterns)
}

// String returns a structural representation.
func (f FolderWatch) String() string {
	return fmt.Sprintf("FolderWatch{path=%s, interval=%s, patterns=[%s], recursive=%t}",
		f.Path, f.Interval, strings.Join(f.Patterns, ","), f.Recursive)
}

func (f FolderWatch) clone() FolderWatch {
	f.Patterns = slices.Clone(f.Patterns)
	return f
}

// WatchConfiguration describes what the owning process watches and where it listens.
// It is immutable: values are fixed at construction and accessors return copies.
type WatchConfiguration struct {
	port    int
	folders []FolderWatch
}

// NewWatchConfiguration builds a configuration from a listen port and folders in order.
// The port is not validated here; that is the job of whoever loads the configuration.
func NewWatchConfiguration(port int, folders ...FolderWatch) *WatchConfiguration {
	cfg := &WatchConfiguration{
		port:    port,
		folders: make([]FolderWatch, len(folders)),
	}
	for i, f := range folders {
		cfg.folders[i] = f.clone()
	}
	return cfg
}

// Port returns the network port the owning process listens on.
func (c *WatchConfiguration) Port() int {
	return c.port
}

// Folders returns a copy of the watched folders in insertion order.
func (c *WatchConfiguration) Folders() []FolderWatch {
	out := make([]FolderWatch, len(c.folders))
	for i, f := range c.folders {
		out[i] = f.clone()
	}
	return out
}

// Equal reports whether both configurations have the same port and the same
// folders in the same order. Two nil configurations are equal.
func (c *WatchConfiguration) Equal(other *WatchConfiguration) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.port != other.port || len(c.folders) != len(other.folders) {
		return false
	}
	for i := range c.folders {
		if !c.folders[i].Equal(other.folders[i]) {
			return false
		}
	}
	return true
}

// String returns a structural representation.
func (c *WatchConfiguration) String() string {
	if c == nil {
		return "WatchConfiguration<nil>"
	}
	parts := make([]string, len(c.folders))
	for i, f := range c.folders {
		parts[i] = f.String()
	}
	return fmt.Sprintf("WatchConfiguration{port=%d, folders=[%s]}", c.port, strings.Join(parts, ", "))
}
