package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/diagnostic"
	"github.com/tsdecl/tsdecl/internal/typemap"
)

func exportScope(t *testing.T) *scope {
	t.Helper()
	cfg := ScopeConfig{ModuleName: "mylib"}
	return newScope(cfg, typemap.NewBasic(), diagnostic.NewCollector(false, false))
}

func TestResolveExportAssignmentTagsDeclaration(t *testing.T) {
	s := exportScope(t)
	fn := &decl.Function{Name: "greet", Annotations: []decl.Annotation{
		{Name: decl.AnnotationPlaceholder},
		decl.ModuleAnnotation("other"),
	}}
	s.decls = []decl.Member{fn}
	s.aliases["greet"] = decl.ModuleAnnotation("mylib")

	s.resolveExportAssignments()

	assert.False(t, decl.HasAnnotation(fn.Annotations, decl.AnnotationPlaceholder))
	ann, ok := decl.FindAnnotation(fn.Annotations, decl.AnnotationModule)
	require.True(t, ok)
	assert.Equal(t, []string{"mylib"}, ann.Arguments)
	assert.Empty(t, s.aliases)
}

func TestResolveExportAssignmentTagsEverySameNamedDeclaration(t *testing.T) {
	s := exportScope(t)
	iface := &decl.Classifier{Name: "Foo", Kind: decl.KindInterface,
		Members: []decl.Member{&decl.Variable{Name: "x", Type: decl.Number}}}
	v := &decl.Variable{Name: "Foo", Type: "FooCtor",
		Annotations: []decl.Annotation{{Name: decl.AnnotationPlaceholder}}}
	s.decls = []decl.Member{iface, v}
	s.aliases["Foo"] = decl.ModuleAnnotation("mylib")

	s.resolveExportAssignments()

	for _, m := range s.decls {
		anns := decl.AnnotationsOf(m)
		assert.False(t, decl.HasAnnotation(anns, decl.AnnotationPlaceholder), m.MemberName())
		ann, ok := decl.FindAnnotation(anns, decl.AnnotationModule)
		require.True(t, ok, m.MemberName())
		assert.Equal(t, []string{"mylib"}, ann.Arguments)
	}
	assert.Empty(t, s.aliases)

	// after merging, the companion pair carries a single module annotation
	// and no placeholder residue
	merged, err := mergeDeclarations(s.decls)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	anns := decl.AnnotationsOf(merged[0])
	assert.False(t, decl.HasAnnotation(anns, decl.AnnotationPlaceholder))
	count := 0
	for _, a := range anns {
		if a.Name == decl.AnnotationModule {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResolveExportAssignmentSkipsEqualModule(t *testing.T) {
	s := exportScope(t)
	v := &decl.Variable{Name: "api", Type: decl.Dynamic,
		Annotations: []decl.Annotation{decl.ModuleAnnotation("mylib")}}
	s.decls = []decl.Member{v}
	s.aliases["api"] = decl.ModuleAnnotation("mylib")

	s.resolveExportAssignments()

	// the alias stays pending: a matching annotation means this declaration
	// was already resolved at a deeper scope
	assert.Contains(t, s.aliases, "api")
	assert.Len(t, v.Annotations, 1)
}

func TestResolveExportAssignmentUnmatchedAliasPropagates(t *testing.T) {
	s := exportScope(t)
	s.decls = []decl.Member{&decl.Variable{Name: "x", Type: decl.Number}}
	s.aliases["missing"] = decl.ModuleAnnotation("mylib")

	s.resolveExportAssignments()

	assert.Contains(t, s.aliases, "missing")
	assert.False(t, decl.HasAnnotation(decl.AnnotationsOf(s.decls[0]), decl.AnnotationModule))
}
