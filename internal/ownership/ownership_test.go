package ownership_test

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/compiler"
	"github.com/tsdecl/tsdecl/internal/ownership"
	"github.com/tsdecl/tsdecl/internal/testutil"
)

const testRoot = "/proj"

func TestOwnAll(t *testing.T) {
	assert.True(t, ownership.OwnAll(nil))
}

func TestFromChecker(t *testing.T) {
	src := `declare interface Gadget {
	id: number;
}
declare interface String {
	shout(): string;
}
`
	filePath := tspath.ResolvePath(testRoot, "test.d.ts")
	fs := testutil.NewDefaultOverlayVFS(map[string]string{
		filePath: src,
		tspath.ResolvePath(testRoot, "tsconfig.json"): `{
			"compilerOptions": { "noEmit": true },
			"files": ["test.d.ts"]
		}`,
	})
	host := compiler.NewHost(testRoot, fs)

	result, diags, err := compiler.BuildProgram(fs, testRoot, "tsconfig.json", host)
	require.NoError(t, err)
	require.Empty(t, diags)

	checker, release, err := compiler.GetTypeChecker(result.Program)
	require.NoError(t, err)
	defer release()

	var files []*ast.SourceFile
	for _, f := range result.Program.GetSourceFiles() {
		if f.FileName() == filePath {
			files = append(files, f)
		}
	}
	require.Len(t, files, 1)
	sf := files[0]

	own := ownership.FromChecker(checker, result.ParsedConfig.FileNames())

	var gadgetName, stringName *ast.Node
	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind != ast.KindInterfaceDeclaration {
			continue
		}
		iface := stmt.AsInterfaceDeclaration()
		switch iface.Name().Text() {
		case "Gadget":
			gadgetName = iface.Name()
		case "String":
			stringName = iface.Name()
		}
	}
	require.NotNil(t, gadgetName)
	require.NotNil(t, stringName)

	assert.True(t, own(gadgetName), "locally declared interface is own")
	assert.False(t, own(stringName), "interface shared with the bundled lib augments")
}
