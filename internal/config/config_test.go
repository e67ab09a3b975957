package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsdecl.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"**/*.d.ts"}, cfg.Include)
	assert.Equal(t, "out", cfg.OutDir)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.SingleFile)
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"include": ["types/**/*.d.ts"],
		"exclude": ["types/internal/**"],
		"qualifier": "jquery",
		"outDir": "build/decl",
		"strict": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"types/**/*.d.ts"}, cfg.Include)
	assert.Equal(t, []string{"types/internal/**"}, cfg.Exclude)
	assert.Equal(t, "jquery", cfg.Qualifier)
	assert.Equal(t, "build/decl", cfg.OutDir)
	assert.True(t, cfg.Strict)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"qualifier": "node"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"**/*.d.ts"}, cfg.Include)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, "node", cfg.Qualifier)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"include": [`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsEmptyInclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Include = nil
	assert.ErrorContains(t, cfg.Validate(), "include")
}

func TestValidateRejectsFileOutDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutDir = "out/decl.json"
	assert.ErrorContains(t, cfg.Validate(), "outDir")
}

func TestValidateRejectsBadPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Include = []string{"types/[.d.ts"}
	assert.Error(t, cfg.Validate())
}

func TestMatcher(t *testing.T) {
	cfg := Config{
		Include: []string{"types/**/*.d.ts"},
		Exclude: []string{"types/vendor/**"},
		OutDir:  "out",
	}
	m, err := cfg.Matcher()
	require.NoError(t, err)

	assert.True(t, m.Matches("types/lib/dom.d.ts"))
	assert.True(t, m.Matches(filepath.Join("types", "a", "b.d.ts")))
	assert.False(t, m.Matches("types/vendor/old.d.ts"))
	assert.False(t, m.Matches("src/main.ts"))
}
