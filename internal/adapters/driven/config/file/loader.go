package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

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

// Format identifies a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultFileNames are the file names searched by Discover, in priority order.
var DefaultFileNames = []string{
	"hotwatch.toml",
	"hotwatch.yaml",
	"hotwatch.yml",
	"hotwatch.json",
	"hotwatch.jsonc",
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unsupported configuration file extension %q", domain.ErrInvalidInput, filepath.Ext(path))
	}
}

// Loader is a file-based implementation of driven.ConfigurationPort.
// The file is read on every load; nothing is cached.
type Loader struct {
	path string
}

// NewLoader creates a loader for the configuration file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// ConfigurationSource describes the file.
func (l *Loader) ConfigurationSource() string {
	return "file:" + l.path
}

// LoadWatchConfiguration reads, parses and validates the configuration file.
// A missing file fails with an error matching domain.ErrConfigurationNotFound.
func (l *Loader) LoadWatchConfiguration(ctx context.Context) (*domain.WatchConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, l.fail(err)
	}

	format, err := FormatOf(l.path)
	if err != nil {
		return nil, l.fail(err)
	}

	logger.Get().Debug().Str("path", l.path).Str("format", string(format)).Msg("loading configuration file")

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, l.fail(fmt.Errorf("%w: %s", domain.ErrConfigurationNotFound, l.path))
		}
		return nil, l.fail(err)
	}

	doc, err := Decode(format, data)
	if err != nil {
		return nil, l.fail(err)
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

// Decode parses data in the given format. Unknown keys are rejected.
// An empty document decodes to the zero Document.
func Decode(format Format, data []byte) (schema.Document, error) {
	var doc schema.Document
	var err error

	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return doc, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidInput, format)
	}

	if errors.Is(err, io.EOF) {
		return schema.Document{}, nil
	}
	if err != nil {
		return schema.Document{}, fmt.Errorf("parsing %s: %w", format, err)
	}
	return doc, nil
}

// Encode serialises doc in the given format.
func Encode(format Format, doc schema.Document) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidInput, format)
	}
}

// Write persists cfg to path in the format implied by its extension.
// The file is written with restricted permissions.
func Write(path string, cfg *domain.WatchConfiguration) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Encode(format, schema.FromDomain(cfg))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0600)
}

// DefaultSearchDirs returns the directories searched for a configuration file:
// the working directory, then ~/.hotwatch.
func DefaultSearchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".hotwatch"))
	}
	return dirs
}

// Discover returns the first existing configuration file found in dirs,
// trying DefaultFileNames in order within each directory.
func Discover(dirs ...string) (string, bool) {
	for _, dir := range dirs {
		for _, name := range DefaultFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, true
			}
		}
	}
	return "", false
}
