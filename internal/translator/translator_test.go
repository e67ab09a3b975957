package translator

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/parser"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/diagnostic"
	"github.com/tsdecl/tsdecl/internal/errors"
	"github.com/tsdecl/tsdecl/internal/typemap"
)

func parseAmbient(t *testing.T, src string) *ast.SourceFile {
	t.Helper()
	sf := parser.ParseSourceFile(ast.SourceFileParseOptions{
		FileName: "/test.d.ts",
		Path:     tspath.Path("/test.d.ts"),
	}, src, core.ScriptKindTS)
	require.NotNil(t, sf)
	return sf
}

func translate(t *testing.T, src string) *decl.PackagePart {
	t.Helper()
	part, err := TranslateSourceFile(parseAmbient(t, src), typemap.NewBasic(),
		RootConfig("test"), diagnostic.NewCollector(false, false))
	require.NoError(t, err)
	return part
}

func TestTranslateVariables(t *testing.T) {
	part := translate(t, `
declare var counter: number;
declare const limit: number;
`)
	require.Len(t, part.Declarations, 2)

	counter := part.Declarations[0].(*decl.Variable)
	assert.Equal(t, "counter", counter.Name)
	assert.Equal(t, decl.Number, counter.Type)
	assert.False(t, counter.ReadOnly)

	limit := part.Declarations[1].(*decl.Variable)
	assert.True(t, limit.ReadOnly)
}

func TestTranslateVariableWithoutDeclareIsPlaceholder(t *testing.T) {
	part := translate(t, `var ambient: string;`)
	require.Len(t, part.Declarations, 1)

	v := part.Declarations[0].(*decl.Variable)
	assert.True(t, decl.HasAnnotation(v.Annotations, decl.AnnotationPlaceholder))
}

func TestTranslateFunctionOverloads(t *testing.T) {
	part := translate(t, `
declare function pick(key: string): string;
declare function pick(index: number): string;
`)
	require.Len(t, part.Declarations, 2)
	for _, m := range part.Declarations {
		fn := m.(*decl.Function)
		assert.Equal(t, "pick", fn.Name)
		assert.Equal(t, decl.String, fn.Signature.ReturnType)
	}
}

func TestTranslateInterface(t *testing.T) {
	part := translate(t, `
declare interface Options {
	readonly name: string;
	retries?: number;
	run(attempt: number): boolean;
}
`)
	require.Len(t, part.Declarations, 1)

	c := part.Declarations[0].(*decl.Classifier)
	assert.Equal(t, decl.KindInterface, c.Kind)
	assert.Equal(t, "Options", c.Name)
	assert.True(t, c.Open)
	require.Len(t, c.Members, 3)

	name := c.Members[0].(*decl.Variable)
	assert.True(t, name.ReadOnly)
	assert.Equal(t, decl.String, name.Type)

	retries := c.Members[1].(*decl.Variable)
	assert.Equal(t, decl.TypeExpr("Number?"), retries.Type)

	run := c.Members[2].(*decl.Function)
	require.Len(t, run.Signature.Parameters, 1)
	assert.Equal(t, decl.Boolean, run.Signature.ReturnType)
}

func TestTranslateClassWithStatics(t *testing.T) {
	part := translate(t, `
declare class Widget {
	constructor(id: number);
	id: number;
	static count: number;
	static create(): Widget;
}
`)
	require.Len(t, part.Declarations, 1)

	c := part.Declarations[0].(*decl.Classifier)
	assert.Equal(t, decl.KindClass, c.Kind)
	require.Len(t, c.ConstructorParams, 1)
	assert.Equal(t, decl.Number, c.ConstructorParams[0].Type)

	comp := c.Companion()
	require.NotNil(t, comp)
	assert.Len(t, comp.Members, 2)
}

func TestTranslateClassHeritage(t *testing.T) {
	part := translate(t, `
declare class List<T> extends Collection<T> implements Iterable<T> {
	head: T;
}
`)
	c := part.Declarations[0].(*decl.Classifier)
	require.Len(t, c.TypeParameters, 1)
	assert.Equal(t, "T", c.TypeParameters[0].Name)
	assert.Equal(t, []decl.HeritageType{
		{Type: "Collection<T>"},
		{Type: "Iterable<T>"},
	}, c.Supertypes)

	head := c.Members[0].(*decl.Variable)
	assert.Equal(t, decl.TypeExpr("T"), head.Type)
}

func TestTranslateIndexSignature(t *testing.T) {
	part := translate(t, `
declare interface Bag {
	[key: string]: number;
}
`)
	c := part.Declarations[0].(*decl.Classifier)
	require.Len(t, c.Members, 2)

	get := c.Members[0].(*decl.Function)
	assert.Equal(t, "get", get.Name)
	assert.True(t, decl.HasAnnotation(get.Annotations, decl.AnnotationNativeGetter))
	assert.Equal(t, decl.TypeExpr("Number?"), get.Signature.ReturnType)

	set := c.Members[1].(*decl.Function)
	assert.Equal(t, "set", set.Name)
	assert.True(t, decl.HasAnnotation(set.Annotations, decl.AnnotationNativeSetter))
	assert.Equal(t, decl.Unit, set.Signature.ReturnType)
	require.Len(t, set.Signature.Parameters, 2)
}

func TestTranslateCallSignature(t *testing.T) {
	part := translate(t, `
declare interface Callable {
	(input: string): number;
}
`)
	c := part.Declarations[0].(*decl.Classifier)
	require.Len(t, c.Members, 1)

	invoke := c.Members[0].(*decl.Function)
	assert.Equal(t, "invoke", invoke.Name)
	assert.True(t, decl.HasAnnotation(invoke.Annotations, decl.AnnotationNativeInvoke))
}

func TestTranslateAccessorPair(t *testing.T) {
	part := translate(t, `
declare class Box {
	get value(): number;
	set value(v: number);
	get frozen(): boolean;
}
`)
	c := part.Declarations[0].(*decl.Classifier)
	require.Len(t, c.Members, 2)

	value := c.Members[0].(*decl.Variable)
	assert.Equal(t, "value", value.Name)
	assert.False(t, value.ReadOnly)

	frozen := c.Members[1].(*decl.Variable)
	assert.True(t, frozen.ReadOnly)
}

func TestTranslateEnum(t *testing.T) {
	part := translate(t, `
declare enum Level {
	Low = 1,
	Deep = -2,
	Label = "x",
	Bare,
}
`)
	c := part.Declarations[0].(*decl.Classifier)
	assert.Equal(t, decl.KindEnum, c.Kind)
	require.Len(t, c.Members, 4)
	assert.Equal(t, "1", c.Members[0].(*decl.EnumEntry).Value)
	assert.Equal(t, "-2", c.Members[1].(*decl.EnumEntry).Value)
	assert.Equal(t, "x", c.Members[2].(*decl.EnumEntry).Value)
	assert.Equal(t, "", c.Members[3].(*decl.EnumEntry).Value)
}

func TestTranslateEnumComputedInitializerFails(t *testing.T) {
	_, err := TranslateSourceFile(parseAmbient(t, `
declare enum E { A = 1 + 2 }
`), typemap.NewBasic(), RootConfig(""), nil)
	var unsupported *UnsupportedNodeError
	require.True(t, errors.As(err, &unsupported))
}

func TestTranslateTypeAliasUnion(t *testing.T) {
	part := translate(t, `declare type ID = string | number;`)
	alias := part.Declarations[0].(*decl.TypeAlias)
	assert.Equal(t, []decl.TypeExpr{decl.String, decl.Number}, alias.Targets)
}

func TestTranslateInterfaceMergesWithNamespace(t *testing.T) {
	part := translate(t, `
declare interface Point {
	x: number;
}
declare namespace Point {
	export const origin: Point;
}
`)
	require.Len(t, part.Declarations, 1)

	c := part.Declarations[0].(*decl.Classifier)
	assert.Equal(t, decl.KindInterface, c.Kind)

	comp := c.Companion()
	require.NotNil(t, comp)
	require.Len(t, comp.Members, 1)
	assert.Equal(t, "origin", comp.Members[0].MemberName())
}

func TestTranslateDottedNamespace(t *testing.T) {
	part := translate(t, `
declare namespace A.B {
	export const v: number;
}
`)
	require.Len(t, part.Declarations, 1)

	a := part.Declarations[0].(*decl.Classifier)
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, decl.KindObject, a.Kind)

	b := a.Members[0].(*decl.Classifier)
	assert.Equal(t, "B", b.Name)
	assert.Equal(t, "v", b.Members[0].MemberName())
}

func TestTranslateExternalModuleExportEquals(t *testing.T) {
	part := translate(t, `
declare module "greeter" {
	function greet(name: string): void;
	export = greet;
}
`)
	require.Len(t, part.Declarations, 1)

	fn := part.Declarations[0].(*decl.Function)
	assert.Equal(t, "greet", fn.Name)
	ann, ok := decl.FindAnnotation(fn.Annotations, decl.AnnotationModule)
	require.True(t, ok)
	assert.Equal(t, []string{"greeter"}, ann.Arguments)
}

func TestTranslateExternalModuleWithValuesNests(t *testing.T) {
	part := translate(t, `
declare module "mixed" {
	export const version: string;
	export interface Config { debug: boolean; }
}
`)
	require.Len(t, part.Declarations, 1)

	obj := part.Declarations[0].(*decl.Classifier)
	assert.Equal(t, decl.KindObject, obj.Kind)
	assert.Equal(t, "mixed", obj.Name)
	ann, ok := decl.FindAnnotation(obj.Annotations, decl.AnnotationModule)
	require.True(t, ok)
	assert.Equal(t, []string{"mixed"}, ann.Arguments)
	assert.Len(t, obj.Members, 2)
}

func TestTranslateTypeOnlyExternalModuleFoldsFlat(t *testing.T) {
	part := translate(t, `
declare module "shapes" {
	export interface Circle { radius: number; }
	export type Radius = number;
}
`)
	require.Len(t, part.Declarations, 2)
	assert.IsType(t, &decl.Classifier{}, part.Declarations[0])
	assert.IsType(t, &decl.TypeAlias{}, part.Declarations[1])
}

func TestTranslateAugmentationBecomesExtensions(t *testing.T) {
	cfg := RootConfig("")
	cfg.IsOwnDeclaration = func(nameNode *ast.Node) bool {
		return nameNode.Text() != "String"
	}
	part, err := TranslateSourceFile(parseAmbient(t, `
declare interface String {
	reverse(): string;
	marker: number;
}
`), typemap.NewBasic(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, part.Declarations, 2)

	fn := part.Declarations[0].(*decl.Function)
	assert.Equal(t, decl.TypeExpr("String"), fn.Receiver)

	v := part.Declarations[1].(*decl.Variable)
	assert.Equal(t, decl.TypeExpr("String"), v.Receiver)
}

func TestTranslateExportDefaultUnsupported(t *testing.T) {
	_, err := TranslateSourceFile(parseAmbient(t, `
declare const x: number;
export default x;
`), typemap.NewBasic(), RootConfig(""), nil)
	var unsupported *UnsupportedNodeError
	require.True(t, errors.As(err, &unsupported))
}

func TestTranslateUnresolvedRootAliasFails(t *testing.T) {
	_, err := TranslateSourceFile(parseAmbient(t, `
declare const x: number;
export = missing;
`), typemap.NewBasic(), RootConfig(""), nil)
	var invariant *InvariantError
	require.True(t, errors.As(err, &invariant))
}

func TestTranslateUnnamedClassSkippedWithDiagnostic(t *testing.T) {
	diags := diagnostic.NewCollector(false, false)
	part, err := TranslateSourceFile(parseAmbient(t, `
declare const keep: number;
export default class {
}
`), typemap.NewBasic(), RootConfig(""), diags)
	require.NoError(t, err)
	assert.Len(t, part.Declarations, 1)
	require.Len(t, diags.Diagnostics(), 1)
	assert.Equal(t, diagnostic.CategorySkippedDeclaration, diags.Diagnostics()[0].Category)
}

func TestTranslateQualifierCarriedThrough(t *testing.T) {
	part := translate(t, `declare var x: number;`)
	assert.Equal(t, "test", part.Qualifier)
}
