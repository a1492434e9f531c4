package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/collectionkit/pkg/errors"
	"github.com/go-drift/collectionkit/pkg/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644))
	return dir
}

func TestResolveWithoutFile(t *testing.T) {
	dir := t.TempDir()
	resolved, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, resolved.Root)
	assert.Equal(t, layout.DefaultSectionLayout(), resolved.Layout)
	assert.Equal(t, slog.LevelInfo, resolved.LogLevel)
	assert.False(t, resolved.Verbose)
}

func TestResolveFile(t *testing.T) {
	dir := writeConfig(t, `
layout:
  inset: {top: 8, left: 16, bottom: 8, right: 16}
  minimum_inter_item_spacing: 4
  line_spacing: 2
logging:
  level: debug
  verbose: true
`)
	resolved, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, layout.SectionLayout{
		Inset:                   layout.EdgeInsetsSymmetric(16, 8),
		MinimumInterItemSpacing: 4,
		LineSpacing:             2,
	}, resolved.Layout)
	assert.Equal(t, slog.LevelDebug, resolved.LogLevel)
	assert.True(t, resolved.Verbose)
}

func TestResolvePartialLayoutKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "layout:\n  line_spacing: 3\n")
	resolved, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, 3.0, resolved.Layout.LineSpacing)
	assert.Equal(t, layout.SmallestNormalSpacing, resolved.Layout.MinimumInterItemSpacing)
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative inset", "layout:\n  inset: {top: -1}\n"},
		{"negative spacing", "layout:\n  minimum_inter_item_spacing: -2\n"},
		{"negative line spacing", "layout:\n  line_spacing: -0.5\n"},
		{"unknown level", "logging:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.body))
			require.Error(t, err)
			var ce *errors.CollectionError
			require.True(t, errors.As(err, &ce), "error %T, want *errors.CollectionError", err)
			assert.Equal(t, errors.KindConfig, ce.Kind)
		})
	}
}

func TestLoadOptionalBadYAML(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "layout: [unclosed"))
	assert.Error(t, err)
}

func TestParseLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
