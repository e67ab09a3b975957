package translator

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/diagnostic"
	"github.com/tsdecl/tsdecl/internal/typemap"
)

// TestTranslateCorpus runs every .d.ts entry of the corpus archive through a
// full translation and checks the resulting top-level declaration names
// against the matching .names entry.
func TestTranslateCorpus(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "corpus.txtar"))
	require.NoError(t, err)

	expected := make(map[string][]string)
	sources := make(map[string]string)
	for _, f := range archive.Files {
		switch {
		case strings.HasSuffix(f.Name, ".d.ts"):
			sources[strings.TrimSuffix(f.Name, ".d.ts")] = string(f.Data)
		case strings.HasSuffix(f.Name, ".names"):
			var names []string
			for _, line := range strings.Split(strings.TrimSpace(string(f.Data)), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					names = append(names, line)
				}
			}
			expected[strings.TrimSuffix(f.Name, ".names")] = names
		}
	}
	require.NotEmpty(t, sources)

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			want, ok := expected[name]
			require.True(t, ok, "missing .names entry for %s", name)

			diags := diagnostic.NewCollector(false, false)
			part, err := TranslateSourceFile(parseAmbient(t, src), typemap.NewBasic(),
				RootConfig(""), diags)
			require.NoError(t, err)

			var got []string
			for _, m := range part.Declarations {
				got = append(got, m.MemberName())
			}
			assert.Equal(t, want, got)
			assert.False(t, diags.HasErrors(), diags.FormatAll())
		})
	}
}

// TestTranslateCorpusModelIsSerializable checks that every corpus result
// survives JSON encoding, since the CLI persists the model that way.
func TestTranslateCorpusModelIsSerializable(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "corpus.txtar"))
	require.NoError(t, err)

	for _, f := range archive.Files {
		if !strings.HasSuffix(f.Name, ".d.ts") {
			continue
		}
		part, err := TranslateSourceFile(parseAmbient(t, string(f.Data)), typemap.NewBasic(),
			RootConfig("corpus"), nil)
		require.NoError(t, err, f.Name)
		assertEncodable(t, f.Name, part)
	}
}

func assertEncodable(t *testing.T, name string, part *decl.PackagePart) {
	t.Helper()
	data, err := json.Marshal(part)
	require.NoError(t, err, name)
	assert.Contains(t, string(data), `"declarations"`, name)
}
