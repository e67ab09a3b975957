package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdecl/tsdecl/internal/decl"
)

func TestNestNamespacesLeafOnly(t *testing.T) {
	members := []decl.Member{&decl.Variable{Name: "v", Type: decl.Number}}
	obj := nestNamespaces(nil, "util", members, nil)

	assert.Equal(t, decl.KindObject, obj.Kind)
	assert.Equal(t, "util", obj.Name)
	assert.Equal(t, members, obj.Members)
}

func TestNestNamespacesQualifierChain(t *testing.T) {
	anns := []decl.Annotation{decl.ModuleAnnotation("lib")}
	members := []decl.Member{&decl.Variable{Name: "v", Type: decl.Number}}

	obj := nestNamespaces([]string{"N", "M"}, "Leaf", members, anns)

	require.Equal(t, "N", obj.Name)
	assert.Equal(t, anns, obj.Annotations)

	require.Len(t, obj.Members, 1)
	m := obj.Members[0].(*decl.Classifier)
	require.Equal(t, "M", m.Name)
	assert.Equal(t, decl.KindObject, m.Kind)
	assert.Equal(t, anns, m.Annotations)

	require.Len(t, m.Members, 1)
	leaf := m.Members[0].(*decl.Classifier)
	require.Equal(t, "Leaf", leaf.Name)
	assert.Equal(t, anns, leaf.Annotations)
	assert.Equal(t, members, leaf.Members)
}

func TestNestNamespacesClonesAnnotations(t *testing.T) {
	anns := []decl.Annotation{decl.ModuleAnnotation("lib")}
	obj := nestNamespaces([]string{"N"}, "Leaf", nil, anns)

	leaf := obj.Members[0].(*decl.Classifier)
	leaf.Annotations[0] = decl.Annotation{Name: "changed"}
	assert.Equal(t, decl.AnnotationModule, obj.Annotations[0].Name)
}
