package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/errors"
)

func TestMergeDeclarationsNoCollisions(t *testing.T) {
	in := []decl.Member{
		&decl.Variable{Name: "a", Type: decl.String},
		&decl.Classifier{Kind: decl.KindInterface, Name: "B"},
	}
	out, err := mergeDeclarations(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMergeDeclarationsOverloadsCoexist(t *testing.T) {
	in := []decl.Member{
		&decl.Function{Name: "f", Signature: decl.CallSignature{ReturnType: decl.Unit}},
		&decl.Function{Name: "f", Signature: decl.CallSignature{ReturnType: decl.String}},
		&decl.Function{Name: "f", Signature: decl.CallSignature{ReturnType: decl.Number}},
	}
	out, err := mergeDeclarations(in)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestMergeInterfaces(t *testing.T) {
	out, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindInterface, Name: "P", Open: true,
			Supertypes: []decl.HeritageType{{Type: "Base"}},
			Members:    []decl.Member{&decl.Variable{Name: "x", Type: decl.Number}},
		},
		&decl.Classifier{Kind: decl.KindInterface, Name: "P",
			Supertypes: []decl.HeritageType{{Type: "Base"}, {Type: "Other"}},
			Members:    []decl.Member{&decl.Variable{Name: "y", Type: decl.Number}},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0].(*decl.Classifier)
	assert.Equal(t, decl.KindInterface, c.Kind)
	assert.True(t, c.Open)
	assert.Len(t, c.Members, 2)
	// duplicate supertype collapses
	assert.Equal(t, []decl.HeritageType{{Type: "Base"}, {Type: "Other"}}, c.Supertypes)
}

func TestMergeClassWithNamespaceObject(t *testing.T) {
	out, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindClass, Name: "Widget",
			Members: []decl.Member{&decl.Variable{Name: "id", Type: decl.Number}}},
		&decl.Classifier{Kind: decl.KindObject, Name: "Widget",
			Members: []decl.Member{&decl.Variable{Name: "count", Type: decl.Number}}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0].(*decl.Classifier)
	assert.Equal(t, decl.KindClass, c.Kind)
	comp := c.Companion()
	require.NotNil(t, comp)
	require.Len(t, comp.Members, 1)
	assert.Equal(t, "count", comp.Members[0].MemberName())
}

func TestMergeCompanionAccumulates(t *testing.T) {
	// {iface, obj1} then obj2: the second object extends the companion the
	// first one created instead of producing a second holder.
	out, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindInterface, Name: "W",
			Members: []decl.Member{&decl.Variable{Name: "m", Type: decl.String}}},
		&decl.Classifier{Kind: decl.KindObject, Name: "W",
			Members: []decl.Member{&decl.Variable{Name: "a", Type: decl.Number}}},
		&decl.Classifier{Kind: decl.KindObject, Name: "W",
			Members: []decl.Member{&decl.Variable{Name: "b", Type: decl.Number}}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0].(*decl.Classifier)
	comp := c.Companion()
	require.NotNil(t, comp)
	assert.Len(t, comp.Members, 2)

	companions := 0
	for _, m := range c.Members {
		if cl, ok := m.(*decl.Classifier); ok && cl.Kind == decl.KindCompanionObject {
			companions++
		}
	}
	assert.Equal(t, 1, companions)
}

func TestMergeObjectsSameModule(t *testing.T) {
	ann := decl.ModuleAnnotation("lib")
	out, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindObject, Name: "ns", Annotations: []decl.Annotation{ann},
			Members: []decl.Member{&decl.Variable{Name: "a", Type: decl.Number}}},
		&decl.Classifier{Kind: decl.KindObject, Name: "ns", Annotations: []decl.Annotation{ann},
			Members: []decl.Member{&decl.Variable{Name: "b", Type: decl.Number}}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Len(t, out[0].(*decl.Classifier).Members, 2)
}

func TestMergeObjectsDifferentModulesConflict(t *testing.T) {
	_, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindObject, Name: "ns",
			Annotations: []decl.Annotation{decl.ModuleAnnotation("a")}},
		&decl.Classifier{Kind: decl.KindObject, Name: "ns",
			Annotations: []decl.Annotation{decl.ModuleAnnotation("b")}},
	})
	var conflict *MergeConflictError
	require.True(t, errors.As(err, &conflict))
}

func TestMergeEmptyClassifierYieldsToVariable(t *testing.T) {
	out, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindInterface, Name: "Thing",
			Annotations: []decl.Annotation{decl.ModuleAnnotation("lib")}},
		&decl.Variable{Name: "Thing", Type: "ThingShape"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	v := out[0].(*decl.Variable)
	assert.Equal(t, decl.TypeExpr("ThingShape"), v.Type)
	assert.True(t, decl.HasAnnotation(v.Annotations, decl.AnnotationModule))
}

func TestMergeInterfaceWithVariableDelegates(t *testing.T) {
	out, err := mergeDeclarations([]decl.Member{
		&decl.Variable{Name: "Shape", Type: "ShapeCtor"},
		&decl.Classifier{Kind: decl.KindInterface, Name: "Shape",
			Members: []decl.Member{&decl.Variable{Name: "area", Type: decl.Number}}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	c := out[0].(*decl.Classifier)
	assert.Equal(t, decl.KindInterface, c.Kind)
	assert.Equal(t, "Shape", c.Name)

	comp := c.Companion()
	require.NotNil(t, comp)
	require.Len(t, comp.Supertypes, 1)
	assert.Equal(t, decl.TypeExpr("ShapeCtor"), comp.Supertypes[0].Type)
	assert.Equal(t, decl.StubDelegateName, comp.Supertypes[0].DelegateName)
}

func TestMergeClassWithVariableConflicts(t *testing.T) {
	_, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindClass, Name: "C",
			Members: []decl.Member{&decl.Variable{Name: "x", Type: decl.Number}}},
		&decl.Variable{Name: "C", Type: decl.Dynamic},
	})
	var conflict *MergeConflictError
	require.True(t, errors.As(err, &conflict))
}

func TestMergeEnumWithVariableConflicts(t *testing.T) {
	_, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindEnum, Name: "E",
			Members: []decl.Member{&decl.EnumEntry{Name: "A"}}},
		&decl.Variable{Name: "E", Type: decl.Dynamic},
	})
	var conflict *MergeConflictError
	require.True(t, errors.As(err, &conflict))
}

func TestMergeIdempotent(t *testing.T) {
	once, err := mergeDeclarations([]decl.Member{
		&decl.Classifier{Kind: decl.KindInterface, Name: "P",
			Members: []decl.Member{&decl.Variable{Name: "x", Type: decl.Number}}},
		&decl.Classifier{Kind: decl.KindObject, Name: "P",
			Members: []decl.Member{&decl.Variable{Name: "s", Type: decl.Number}}},
	})
	require.NoError(t, err)

	twice, err := mergeDeclarations(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
