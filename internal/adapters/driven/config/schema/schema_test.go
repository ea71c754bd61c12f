package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := Build(Document{
		Folders: []FolderDocument{{Path: "/src/main"}},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPort, cfg.Port())
	require.Len(t, cfg.Folders(), 1)

	f := cfg.Folders()[0]
	assert.Equal(t, "/src/main", f.Path)
	assert.Equal(t, time.Second, f.Interval)
	assert.Equal(t, []string{"*.class"}, f.Patterns)
	assert.True(t, f.Recursive)
}

func TestBuild_KeepsExplicitValues(t *testing.T) {
	cfg, err := Build(Document{
		Port: 6000,
		Folders: []FolderDocument{
			{Path: "/a", Interval: 1000},
			{Path: "/b", Interval: 2000, Patterns: []string{"*.jar"}, Recursive: boolPtr(false)},
		},
	})

	require.NoError(t, err)
	expected := domain.NewWatchConfiguration(6000,
		domain.FolderWatch{Path: "/a", Interval: time.Second, Patterns: []string{"*.class"}, Recursive: true},
		domain.FolderWatch{Path: "/b", Interval: 2 * time.Second, Patterns: []string{"*.jar"}, Recursive: false},
	)
	assert.True(t, expected.Equal(cfg), cfg.String())
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		message string
	}{
		{
			name:    "no folders",
			doc:     Document{Port: 8080},
			message: "folders",
		},
		{
			name:    "port too large",
			doc:     Document{Port: 70000, Folders: []FolderDocument{{Path: "/a"}}},
			message: "port",
		},
		{
			name:    "negative port",
			doc:     Document{Port: -1, Folders: []FolderDocument{{Path: "/a"}}},
			message: "port",
		},
		{
			name:    "empty folder path",
			doc:     Document{Folders: []FolderDocument{{Path: "/a"}, {Path: ""}}},
			message: "folders[1].path",
		},
		{
			name:    "negative interval",
			doc:     Document{Folders: []FolderDocument{{Path: "/a", Interval: -5}}},
			message: "folders[0].interval",
		},
		{
			name:    "blank pattern",
			doc:     Document{Folders: []FolderDocument{{Path: "/a", Patterns: []string{"*.class", ""}}}},
			message: "folders[0].patterns[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build(tt.doc)

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFromDomain_RoundTrip(t *testing.T) {
	cfg := domain.NewWatchConfiguration(9090,
		domain.FolderWatch{Path: "/x", Interval: 250 * time.Millisecond, Patterns: []string{"*.class"}, Recursive: false},
	)

	doc := FromDomain(cfg)
	assert.Equal(t, 9090, doc.Port)
	require.Len(t, doc.Folders, 1)
	assert.Equal(t, 250, doc.Folders[0].Interval)
	require.NotNil(t, doc.Folders[0].Recursive)
	assert.False(t, *doc.Folders[0].Recursive)

	back, err := Build(doc)
	require.NoError(t, err)
	assert.True(t, cfg.Equal(back))
}
