package translator

import (
	"slices"

	"github.com/tsdecl/tsdecl/internal/decl"
)

// resolveExportAssignments applies the scope's pending export-equals aliases
// to its declarations. A declaration already carrying the same module
// annotation is left untouched and does not consume the alias. Otherwise the
// declaration loses any module and placeholder annotations and gains the
// alias's module annotation. An alias can match several same-named
// declarations (an interface and a variable, say), so consumed aliases are
// removed from the table only after the whole pass; the remainder propagate
// to the enclosing scope.
func (s *scope) resolveExportAssignments() {
	if len(s.aliases) == 0 {
		return
	}
	consumed := make(map[string]bool)
	for _, m := range s.decls {
		alias, ok := s.aliases[m.MemberName()]
		if !ok {
			continue
		}
		anns := decl.AnnotationsOf(m)
		if existing, found := decl.FindAnnotation(anns, decl.AnnotationModule); found &&
			slices.Equal(existing.Arguments, alias.Arguments) {
			continue
		}
		anns = decl.WithoutAnnotation(anns, decl.AnnotationModule)
		anns = decl.WithoutAnnotation(anns, decl.AnnotationPlaceholder)
		decl.SetAnnotations(m, append(anns, alias))
		consumed[m.MemberName()] = true
	}
	for name := range consumed {
		delete(s.aliases, name)
	}
}
