package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/collectionkit/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	old := errors.DefaultHandler
	oldLogger := slog.Default()
	t.Cleanup(func() {
		errors.SetHandler(old)
		slog.SetDefault(oldLogger)
	})

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "--config", t.TempDir())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "collectionkit version "+Version), out)
}

func TestReplayWithMetrics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sections:
  - name: feed
steps:
  - section: feed
    op: append_all
    items: [a, b]
  - section: feed
    op: remove_item
    items: [a]
  - section: feed
    op: reload
`), 0o644))

	out, _, err := execute(t, "replay", path, "--config", dir, "--metrics")
	require.NoError(t, err)

	for _, want := range []string{
		"[0] feed: insert [0 1]",
		"[1] feed: delete [0]",
		"[2] reload section feed",
		"feed: [b]",
		"collectionkit_mutations_total{action=delete,channel=replay} 1",
		"collectionkit_mutated_indices_total{action=insert,channel=replay} 2",
		"collectionkit_reloads_total{channel=replay,subject=section} 1",
	} {
		assert.Contains(t, out, want)
	}
}

func TestReplayBadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "collectionkit.yaml"), []byte("logging:\n  level: loud\n"), 0o644))
	_, _, err := execute(t, "version", "--config", dir)
	assert.Error(t, err)
}

func TestReplayMissingScript(t *testing.T) {
	_, _, err := execute(t, "replay", filepath.Join(t.TempDir(), "absent.yaml"), "--config", t.TempDir())
	assert.Error(t, err)
}

func TestReplayRequiresArg(t *testing.T) {
	_, _, err := execute(t, "replay", "--config", t.TempDir())
	assert.Error(t, err)
}
