package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tsdecl/tsdecl/internal/decl"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		fileName string
		want     string
	}{
		{"types/jquery.d.ts", "jquery.json"},
		{"/abs/path/node.d.ts", "node.json"},
		{"plain.ts", "plain.json"},
		{"noext", "noext.json"},
	}
	for _, tc := range cases {
		got := outputPath("out", tc.fileName)
		assert.Equal(t, filepath.Join("out", tc.want), got, tc.fileName)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"qualifier": "acme", "outDir": "models"}`), 0o644))

	cfg, err := loadConfig(dir, "custom.json", zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Qualifier)
	assert.Equal(t, "models", cfg.OutDir)
}

func TestLoadConfigExplicitPathMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := loadConfig(dir, "nope.json", zap.NewNop().Sugar())
	assert.Error(t, err)
}

func TestLoadConfigPicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsdecl.json"),
		[]byte(`{"include": ["lib/**/*.d.ts"]}`), 0o644))

	cfg, err := loadConfig(dir, "", zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/**/*.d.ts"}, cfg.Include)
	// unset keys keep their defaults
	assert.Equal(t, "out", cfg.OutDir)
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir(), "", zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.d.ts"}, cfg.Include)
	assert.Equal(t, "out", cfg.OutDir)
}

func TestWritePartCreatesDirAndTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "widget.json")
	part := &decl.PackagePart{Qualifier: "acme", Declarations: []decl.Member{
		&decl.Variable{Name: "version", Type: decl.String},
	}}

	require.NoError(t, writePart(path, part))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "acme", decoded["qualifier"])
}
