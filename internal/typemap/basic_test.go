package typemap

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/parser"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/decl"
)

func parseSource(t *testing.T, src string) *ast.SourceFile {
	t.Helper()
	sf := parser.ParseSourceFile(ast.SourceFileParseOptions{
		FileName: "/types.d.ts",
		Path:     tspath.Path("/types.d.ts"),
	}, src, core.ScriptKindTS)
	require.NotNil(t, sf)
	return sf
}

// firstVarType parses `declare var x: <typeExpr>;` and returns the type node.
func firstVarType(t *testing.T, typeExpr string) *ast.Node {
	t.Helper()
	sf := parseSource(t, "declare var x: "+typeExpr+";")
	require.NotEmpty(t, sf.Statements.Nodes)
	vs := sf.Statements.Nodes[0].AsVariableStatement()
	list := vs.DeclarationList.AsVariableDeclarationList()
	return list.Declarations.Nodes[0].AsVariableDeclaration().Type
}

func TestMapTypeKeywords(t *testing.T) {
	tests := []struct {
		src  string
		want decl.TypeExpr
	}{
		{"string", decl.String},
		{"number", decl.Number},
		{"boolean", decl.Boolean},
		{"void", decl.Unit},
		{"any", decl.Dynamic},
		{"unknown", decl.Dynamic},
		{"object", decl.Dynamic},
		{"never", decl.Dynamic},
		{"undefined", decl.Dynamic},
	}
	b := NewBasic()
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, b.MapType(firstVarType(t, tt.src)))
		})
	}
}

func TestMapTypeNilIsDynamic(t *testing.T) {
	assert.Equal(t, decl.Dynamic, NewBasic().MapType(nil))
}

func TestMapTypeLiterals(t *testing.T) {
	b := NewBasic()
	assert.Equal(t, decl.String, b.MapType(firstVarType(t, `"on"`)))
	assert.Equal(t, decl.Number, b.MapType(firstVarType(t, "42")))
	assert.Equal(t, decl.Boolean, b.MapType(firstVarType(t, "true")))
}

func TestMapTypeArray(t *testing.T) {
	b := NewBasic()
	assert.Equal(t, decl.TypeExpr("Array<String>"), b.MapType(firstVarType(t, "string[]")))
	assert.Equal(t, decl.TypeExpr("Array<Array<Number>>"), b.MapType(firstVarType(t, "number[][]")))
}

func TestMapTypeReference(t *testing.T) {
	b := NewBasic()
	assert.Equal(t, decl.TypeExpr("Element"), b.MapType(firstVarType(t, "Element")))
	assert.Equal(t, decl.TypeExpr("Map<String, Number>"), b.MapType(firstVarType(t, "Map<string, number>")))
	assert.Equal(t, decl.TypeExpr("ns.Thing"), b.MapType(firstVarType(t, "ns.Thing")))
}

func TestMapTypeUnion(t *testing.T) {
	b := NewBasic()
	// nullish members become nullability
	assert.Equal(t, decl.TypeExpr("String?"), b.MapType(firstVarType(t, "string | null")))
	assert.Equal(t, decl.TypeExpr("String?"), b.MapType(firstVarType(t, "string | undefined")))
	// matching constituents collapse
	assert.Equal(t, decl.String, b.MapType(firstVarType(t, `"a" | "b"`)))
	// mixed unions degrade
	assert.Equal(t, decl.Dynamic, b.MapType(firstVarType(t, "string | number")))
	assert.Equal(t, decl.Dynamic, b.MapType(firstVarType(t, "null | undefined")))
}

func TestMapTypeParenthesized(t *testing.T) {
	assert.Equal(t, decl.String, NewBasic().MapType(firstVarType(t, "(string)")))
}

func TestMapTypeFunction(t *testing.T) {
	got := NewBasic().MapType(firstVarType(t, "(a: number, b: string) => boolean"))
	assert.Equal(t, decl.TypeExpr("(a: Number, b: String) -> Boolean"), got)
}

func TestMapTypeUnrepresentableIsDynamic(t *testing.T) {
	b := NewBasic()
	assert.Equal(t, decl.Dynamic, b.MapType(firstVarType(t, "[string, number]")))
	assert.Equal(t, decl.Dynamic, b.MapType(firstVarType(t, "{ a: number }")))
	assert.Equal(t, decl.Dynamic, b.MapType(firstVarType(t, "typeof x")))
}

func TestNullable(t *testing.T) {
	b := NewBasic()
	assert.Equal(t, decl.TypeExpr("String?"), b.Nullable(decl.String))
	assert.Equal(t, decl.TypeExpr("String?"), b.Nullable("String?"))
	assert.Equal(t, decl.Dynamic, b.Nullable(decl.Dynamic))
}

func TestMapCallSignature(t *testing.T) {
	sf := parseSource(t, "declare function f(a: string, b?: number, ...rest: boolean[]): void;")
	sigs, err := NewBasic().MapCallSignature(sf.Statements.Nodes[0])
	require.NoError(t, err)
	require.Len(t, sigs, 1)

	sig := sigs[0]
	assert.Equal(t, decl.Unit, sig.ReturnType)
	require.Len(t, sig.Parameters, 3)

	assert.Equal(t, decl.Parameter{Name: "a", Type: decl.String}, sig.Parameters[0])
	assert.Equal(t, decl.Parameter{Name: "b", Type: decl.Number, Optional: true}, sig.Parameters[1])
	// variadic parameter types unwrap to the element type
	assert.Equal(t, decl.Parameter{Name: "rest", Type: decl.Boolean, Variadic: true}, sig.Parameters[2])
}

func TestMapCallSignatureDestructuredParameterFails(t *testing.T) {
	sf := parseSource(t, "declare function f({a}: {a: number}): void;")
	_, err := NewBasic().MapCallSignature(sf.Statements.Nodes[0])
	assert.Error(t, err)
}

func TestMapCallSignatureNotFunctionLike(t *testing.T) {
	sf := parseSource(t, "declare var x: number;")
	_, err := NewBasic().MapCallSignature(sf.Statements.Nodes[0])
	assert.Error(t, err)
}

func TestWithTypeParameters(t *testing.T) {
	sf := parseSource(t, "declare function id<T extends object, U>(x: T): U;")
	fn := sf.Statements.Nodes[0].AsFunctionDeclaration()

	b := NewBasic()
	scoped, params := b.WithTypeParameters(fn.TypeParameters)
	require.Len(t, params, 2)
	assert.Equal(t, decl.TypeParameter{Name: "T", Constraint: decl.Dynamic}, params[0])
	assert.Equal(t, decl.TypeParameter{Name: "U"}, params[1])

	sigs, err := scoped.MapCallSignature(fn.AsNode())
	require.NoError(t, err)
	assert.Equal(t, decl.TypeExpr("T"), sigs[0].Parameters[0].Type)
	assert.Equal(t, decl.TypeExpr("U"), sigs[0].ReturnType)

	// the original mapper is unaffected: T is a nominal reference there
	assert.Equal(t, decl.TypeExpr("T"), b.MapType(firstVarType(t, "T")))
}

func TestWithTypeParametersNilList(t *testing.T) {
	b := NewBasic()
	scoped, params := b.WithTypeParameters(nil)
	assert.Same(t, Mapper(b), scoped)
	assert.Empty(t, params)
}
