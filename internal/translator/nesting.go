package translator

import (
	"slices"

	"github.com/tsdecl/tsdecl/internal/decl"
)

// nestNamespaces folds a qualifier chain and a leaf declaration list into
// nested namespace objects: the leaf object holds the members, and each
// qualifier wraps the previous level from the innermost outward, so the
// nesting order matches source declaration order. Every level carries the
// same annotation set.
func nestNamespaces(qualifiers []string, leaf string, members []decl.Member, anns []decl.Annotation) *decl.Classifier {
	obj := &decl.Classifier{
		Kind:        decl.KindObject,
		Name:        leaf,
		Members:     members,
		Annotations: slices.Clone(anns),
	}
	for i := len(qualifiers) - 1; i >= 0; i-- {
		obj = &decl.Classifier{
			Kind:        decl.KindObject,
			Name:        qualifiers[i],
			Members:     []decl.Member{obj},
			Annotations: slices.Clone(anns),
		}
	}
	return obj
}
