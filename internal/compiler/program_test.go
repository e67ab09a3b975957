package compiler_test

import (
	"strings"
	"testing"

	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/compiler"
	"github.com/tsdecl/tsdecl/internal/testutil"
)

const testRoot = "/proj"

// setupProgram builds a program over an in-memory project holding the given
// declaration files plus a minimal tsconfig listing them.
func setupProgram(t *testing.T, files map[string]string) *compiler.Result {
	t.Helper()

	var names []string
	virtual := make(map[string]string, len(files)+1)
	for name, src := range files {
		virtual[tspath.ResolvePath(testRoot, name)] = src
		names = append(names, name)
	}
	virtual[tspath.ResolvePath(testRoot, "tsconfig.json")] = `{
		"compilerOptions": { "noEmit": true },
		"files": ["` + strings.Join(names, `", "`) + `"]
	}`

	fs := testutil.NewDefaultOverlayVFS(virtual)
	host := compiler.NewHost(testRoot, fs)

	result, diags, err := compiler.BuildProgram(fs, testRoot, "tsconfig.json", host)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.NotNil(t, result)
	return result
}

func TestBuildProgramMissingTsconfig(t *testing.T) {
	fs := testutil.NewDefaultOverlayVFS(nil)
	host := compiler.NewHost(testRoot, fs)

	_, _, err := compiler.BuildProgram(fs, testRoot, "tsconfig.json", host)
	assert.ErrorContains(t, err, "could not find tsconfig")
}

func TestBuildProgramAndSelectDeclarationFiles(t *testing.T) {
	result := setupProgram(t, map[string]string{
		"types.d.ts": "declare var counter: number;\n",
	})

	assert.Empty(t, compiler.SyntacticDiagnostics(result.Program))

	files := compiler.DeclarationFiles(result.Program, nil)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0].FileName(), "types.d.ts"))
}

func TestDeclarationFilesFilter(t *testing.T) {
	result := setupProgram(t, map[string]string{
		"keep.d.ts": "declare var a: number;\n",
		"skip.d.ts": "declare var b: number;\n",
	})

	files := compiler.DeclarationFiles(result.Program, func(path string) bool {
		return !strings.Contains(path, "skip")
	})
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0].FileName(), "keep.d.ts"))
}

func TestGetTypeChecker(t *testing.T) {
	result := setupProgram(t, map[string]string{
		"types.d.ts": "declare var counter: number;\n",
	})

	checker, release, err := compiler.GetTypeChecker(result.Program)
	require.NoError(t, err)
	require.NotNil(t, checker)
	release()
}
