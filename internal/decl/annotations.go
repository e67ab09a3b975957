package decl

import (
	"slices"

	"github.com/tsdecl/tsdecl/internal/errors"
)

// Annotation is a named marker with string arguments, attached to a member.
type Annotation struct {
	Name      string   `json:"name"`
	Arguments []string `json:"arguments,omitempty"`
}

// Annotation names with structural meaning during merging.
const (
	// AnnotationModule records the external module path a declaration
	// originates from. At the root scope it carries no argument.
	AnnotationModule = "module"
	// AnnotationPlaceholder marks a synthesized stand-in declaration. It is
	// stripped once a genuine declaration with the same name is confirmed.
	AnnotationPlaceholder = "placeholder"
	// AnnotationNativeGetter and AnnotationNativeSetter mark index-signature
	// accessors; AnnotationNativeInvoke marks a translated call signature.
	AnnotationNativeGetter = "nativeGetter"
	AnnotationNativeSetter = "nativeSetter"
	AnnotationNativeInvoke = "nativeInvoke"
)

// ModuleAnnotation builds a module annotation for the given path. An empty
// path produces the bare root-scope form.
func ModuleAnnotation(path string) Annotation {
	if path == "" {
		return Annotation{Name: AnnotationModule}
	}
	return Annotation{Name: AnnotationModule, Arguments: []string{path}}
}

// HasAnnotation reports whether the list carries an annotation with the name.
func HasAnnotation(anns []Annotation, name string) bool {
	for _, a := range anns {
		if a.Name == name {
			return true
		}
	}
	return false
}

// FindAnnotation returns the first annotation with the name, if any.
func FindAnnotation(anns []Annotation, name string) (Annotation, bool) {
	for _, a := range anns {
		if a.Name == name {
			return a, true
		}
	}
	return Annotation{}, false
}

// WithoutAnnotation returns the list with every annotation of the given name
// removed. The input list is not modified.
func WithoutAnnotation(anns []Annotation, name string) []Annotation {
	var out []Annotation
	for _, a := range anns {
		if a.Name != name {
			out = append(out, a)
		}
	}
	return out
}

// MergeAnnotations combines the annotation lists of two merged declarations.
// An empty list yields to the other side outright. Otherwise the lists are
// concatenated and same-named annotations are folded pairwise: a bare
// annotation yields to one with arguments, equal argument lists collapse, and
// differing non-empty argument lists are a merge conflict.
func MergeAnnotations(a, b []Annotation) ([]Annotation, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}

	var out []Annotation
	index := make(map[string]int)
	for _, ann := range slices.Concat(a, b) {
		i, seen := index[ann.Name]
		if !seen {
			index[ann.Name] = len(out)
			out = append(out, ann)
			continue
		}
		folded, err := foldAnnotation(out[i], ann)
		if err != nil {
			return nil, err
		}
		out[i] = folded
	}
	return out, nil
}

func foldAnnotation(a, b Annotation) (Annotation, error) {
	switch {
	case len(a.Arguments) == 0:
		return b, nil
	case len(b.Arguments) == 0:
		return a, nil
	case slices.Equal(a.Arguments, b.Arguments):
		return a, nil
	default:
		return Annotation{}, errors.Newf(
			"conflicting arguments for annotation %q: %v vs %v",
			a.Name, a.Arguments, b.Arguments)
	}
}
