package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsArtifactEventDefaultOutDir(t *testing.T) {
	artifacts := artifactPaths(".")

	tests := []struct {
		name    string
		path    string
		ignored bool
	}{
		{"resultado_do_scan", "compliance-scan-results.json", true},
		{"relatorio_detalhado", "./security-detailed-report.json", true},
		{"sumario_markdown", "security-summary.md", true},
		{"npm_audit", "npm-audit.json", true},
		{"package_json_do_usuario", "package.json", false},
		{"fonte_ts", "src/checkout.ts", false},
		{"json_qualquer", "src/config.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ignored, isArtifactEvent(tt.path, artifacts))
		})
	}
}

func TestIsArtifactEventResolvedAgainstOutDir(t *testing.T) {
	artifacts := artifactPaths("reports")

	assert.True(t, isArtifactEvent("reports/security-summary.md", artifacts))
	assert.True(t, isArtifactEvent("reports/compliance-scan-results.json", artifacts))
	assert.False(t, isArtifactEvent("security-summary.md", artifacts))
	assert.False(t, isArtifactEvent("reports/package.json", artifacts))
}

func TestAddWatchRecursiveSkipsGeneratedDirs(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"src", "node_modules", "coverage", "dist", "build"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, addWatchRecursive(w, root))

	list := w.WatchList()
	assert.Contains(t, list, filepath.Join(root, "src"))
	assert.NotContains(t, list, filepath.Join(root, "coverage"))
	assert.NotContains(t, list, filepath.Join(root, "node_modules"))
	assert.NotContains(t, list, filepath.Join(root, "dist"))
	assert.NotContains(t, list, filepath.Join(root, "build"))
}
