// Package defaults provides a ConfigurationPort that derives a watch
// configuration from the conventional build output folders of a project.
package defaults

import (
	"context"
	"os"
	"path/filepath"

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

// ClassDirs are the build output folders probed under the base directory.
var ClassDirs = []string{
	filepath.Join("target", "classes"),
	filepath.Join("build", "classes"),
	filepath.Join("out", "production", "classes"),
}

// Loader builds a configuration from whichever ClassDirs exist under BaseDir.
// When none exist the base directory itself is watched.
type Loader struct {
	BaseDir string
}

// NewLoader creates a defaults loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	if baseDir == "" {
		baseDir = "."
	}
	return &Loader{BaseDir: baseDir}
}

// ConfigurationSource describes the loader.
func (l *Loader) ConfigurationSource() string {
	return "defaults:" + l.BaseDir
}

// LoadWatchConfiguration returns the default configuration on port domain.DefaultPort.
func (l *Loader) LoadWatchConfiguration(ctx context.Context) (*domain.WatchConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewConfigurationLoadError(l.ConfigurationSource(), err)
	}

	var doc schema.Document
	for _, dir := range ClassDirs {
		candidate := filepath.Join(l.BaseDir, dir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			doc.Folders = append(doc.Folders, schema.FolderDocument{Path: candidate})
		}
	}
	if len(doc.Folders) == 0 {
		doc.Folders = []schema.FolderDocument{{Path: l.BaseDir}}
	}

	logger.Get().Debug().Str("base", l.BaseDir).Int("folders", len(doc.Folders)).Msg("using default configuration")

	cfg, err := schema.Build(doc)
	if err != nil {
		return nil, domain.NewConfigurationLoadError(l.ConfigurationSource(), err)
	}
	return cfg, nil
}
