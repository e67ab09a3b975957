package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleAnnotation(t *testing.T) {
	bare := ModuleAnnotation("")
	assert.Equal(t, AnnotationModule, bare.Name)
	assert.Empty(t, bare.Arguments)

	named := ModuleAnnotation("fs")
	assert.Equal(t, []string{"fs"}, named.Arguments)
}

func TestFindAndHasAnnotation(t *testing.T) {
	anns := []Annotation{
		{Name: AnnotationPlaceholder},
		ModuleAnnotation("lib"),
	}

	assert.True(t, HasAnnotation(anns, AnnotationModule))
	assert.False(t, HasAnnotation(anns, AnnotationNativeGetter))

	ann, ok := FindAnnotation(anns, AnnotationModule)
	require.True(t, ok)
	assert.Equal(t, []string{"lib"}, ann.Arguments)

	_, ok = FindAnnotation(anns, "absent")
	assert.False(t, ok)
}

func TestWithoutAnnotation(t *testing.T) {
	anns := []Annotation{
		{Name: AnnotationPlaceholder},
		ModuleAnnotation("lib"),
		{Name: AnnotationPlaceholder},
	}
	out := WithoutAnnotation(anns, AnnotationPlaceholder)
	assert.Equal(t, []Annotation{ModuleAnnotation("lib")}, out)
	// input untouched
	assert.Len(t, anns, 3)
}

func TestMergeAnnotationsEmptySideYields(t *testing.T) {
	anns := []Annotation{ModuleAnnotation("lib")}

	out, err := MergeAnnotations(nil, anns)
	require.NoError(t, err)
	assert.Equal(t, anns, out)

	out, err = MergeAnnotations(anns, nil)
	require.NoError(t, err)
	assert.Equal(t, anns, out)
}

func TestMergeAnnotationsBareYieldsToArguments(t *testing.T) {
	out, err := MergeAnnotations(
		[]Annotation{{Name: AnnotationModule}},
		[]Annotation{ModuleAnnotation("lib")},
	)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"lib"}, out[0].Arguments)

	out, err = MergeAnnotations(
		[]Annotation{ModuleAnnotation("lib")},
		[]Annotation{{Name: AnnotationModule}},
	)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"lib"}, out[0].Arguments)
}

func TestMergeAnnotationsEqualArgumentsCollapse(t *testing.T) {
	out, err := MergeAnnotations(
		[]Annotation{ModuleAnnotation("lib"), {Name: AnnotationPlaceholder}},
		[]Annotation{ModuleAnnotation("lib")},
	)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestMergeAnnotationsConflict(t *testing.T) {
	_, err := MergeAnnotations(
		[]Annotation{ModuleAnnotation("a")},
		[]Annotation{ModuleAnnotation("b")},
	)
	assert.Error(t, err)
}

func TestMergeAnnotationsKeepsDistinctNames(t *testing.T) {
	out, err := MergeAnnotations(
		[]Annotation{{Name: AnnotationNativeGetter}},
		[]Annotation{ModuleAnnotation("lib")},
	)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestCompanionLookup(t *testing.T) {
	comp := &Classifier{Kind: KindCompanionObject}
	c := &Classifier{Kind: KindClass, Name: "C", Members: []Member{
		&Variable{Name: "x"},
		comp,
	}}
	assert.Same(t, comp, c.Companion())

	empty := &Classifier{Kind: KindClass}
	assert.Nil(t, empty.Companion())
}
