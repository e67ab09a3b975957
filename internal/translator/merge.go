package translator

import (
	"slices"

	"github.com/tsdecl/tsdecl/internal/decl"
)

// mergeDeclarations folds same-named declarations into single entities.
// Functions are excluded entirely: overload entries sharing a name coexist
// verbatim. For every other name bound more than once, entries fold
// left-to-right with the binary merge rules; the merged entity keeps the
// position of its first contributor and later contributors are tombstoned.
// A list with no same-named non-function entries passes through unchanged.
func mergeDeclarations(members []decl.Member) ([]decl.Member, error) {
	out := slices.Clone(members)
	index := make(map[string]int)
	merged := false

	for i, m := range out {
		if _, isFunction := m.(*decl.Function); isFunction {
			continue
		}
		name := m.MemberName()
		first, seen := index[name]
		if !seen {
			index[name] = i
			continue
		}
		folded, err := mergeTwo(out[first], m)
		if err != nil {
			return nil, err
		}
		out[first] = folded
		out[i] = nil
		merged = true
	}

	if !merged {
		return out, nil
	}
	result := make([]decl.Member, 0, len(out))
	for _, m := range out {
		if m != nil {
			result = append(result, m)
		}
	}
	return result, nil
}

// mergeTwo applies the binary merge rule for one pair of same-named
// declarations. Rules are symmetric unless noted.
func mergeTwo(a, b decl.Member) (decl.Member, error) {
	switch left := a.(type) {
	case *decl.Classifier:
		switch right := b.(type) {
		case *decl.Classifier:
			return mergeClassifiers(left, right)
		case *decl.Variable:
			return mergeClassifierVariable(left, right)
		}
	case *decl.Variable:
		if right, ok := b.(*decl.Classifier); ok {
			return mergeClassifierVariable(right, left)
		}
	}
	return nil, mergeConflict(a, b, "no merge rule for this combination")
}

func mergeClassifiers(a, b *decl.Classifier) (decl.Member, error) {
	switch {
	case a.Kind == decl.KindInterface && b.Kind == decl.KindInterface:
		return unionClassifiers(a, b)

	case isMergeTarget(a) && b.Kind == decl.KindObject:
		return attachStaticHolder(a, b)
	case isMergeTarget(b) && a.Kind == decl.KindObject:
		return attachStaticHolder(b, a)

	case a.Kind == decl.KindObject && b.Kind == decl.KindObject:
		if !sameModule(a, b) {
			return nil, mergeConflict(a, b, "objects originate from different modules")
		}
		return unionClassifiers(a, b)
	}
	return nil, mergeConflict(a, b, "no merge rule for these classifier kinds")
}

// isMergeTarget reports whether a classifier can absorb an object's members
// as a static holder.
func isMergeTarget(c *decl.Classifier) bool {
	return c.Kind == decl.KindClass || c.Kind == decl.KindInterface
}

func sameModule(a, b *decl.Classifier) bool {
	annA, okA := decl.FindAnnotation(a.Annotations, decl.AnnotationModule)
	annB, okB := decl.FindAnnotation(b.Annotations, decl.AnnotationModule)
	return okA && okB && slices.Equal(annA.Arguments, annB.Arguments)
}

// unionClassifiers combines two classifiers of the same kind into one. The
// combined member list is run back through mergeDeclarations, so nested name
// collisions introduced by the union resolve in the same pass.
func unionClassifiers(a, b *decl.Classifier) (decl.Member, error) {
	members, err := mergeDeclarations(append(slices.Clone(a.Members), b.Members...))
	if err != nil {
		return nil, err
	}
	anns, err := decl.MergeAnnotations(a.Annotations, b.Annotations)
	if err != nil {
		return nil, mergeConflict(a, b, "%v", err)
	}

	supertypes := slices.Clone(a.Supertypes)
	for _, st := range b.Supertypes {
		if !slices.ContainsFunc(supertypes, func(h decl.HeritageType) bool { return h.Type == st.Type }) {
			supertypes = append(supertypes, st)
		}
	}

	typeParams := a.TypeParameters
	if len(typeParams) == 0 {
		typeParams = b.TypeParameters
	}
	ctorParams := a.ConstructorParams
	if len(ctorParams) == 0 {
		ctorParams = b.ConstructorParams
	}

	return &decl.Classifier{
		Kind:              a.Kind,
		Name:              a.Name,
		ConstructorParams: ctorParams,
		TypeParameters:    typeParams,
		Supertypes:        supertypes,
		Members:           members,
		Annotations:       anns,
		Open:              a.Open || b.Open,
	}, nil
}

// attachStaticHolder folds an object's members into the target classifier as
// a companion. An existing companion is extended rather than replaced.
func attachStaticHolder(target, obj *decl.Classifier) (decl.Member, error) {
	anns, err := decl.MergeAnnotations(target.Annotations, obj.Annotations)
	if err != nil {
		return nil, mergeConflict(target, obj, "%v", err)
	}

	if companion := target.Companion(); companion != nil {
		members, merr := mergeDeclarations(append(slices.Clone(companion.Members), obj.Members...))
		if merr != nil {
			return nil, merr
		}
		companion.Members = members
	} else {
		target.Members = append(target.Members, &decl.Classifier{
			Kind:    decl.KindCompanionObject,
			Members: obj.Members,
		})
	}
	target.Annotations = anns
	return target, nil
}

// mergeClassifierVariable resolves a classifier and a variable sharing one
// name. An empty classifier concedes to the variable. A non-empty interface
// or namespace object becomes an interface whose static holder delegates to
// a placeholder typed as the variable, expressing that the entity is also
// usable as a value of that shape.
func mergeClassifierVariable(c *decl.Classifier, v *decl.Variable) (decl.Member, error) {
	anns, err := decl.MergeAnnotations(c.Annotations, v.Annotations)
	if err != nil {
		return nil, mergeConflict(c, v, "%v", err)
	}

	if len(c.Members) == 0 {
		v.Annotations = anns
		return v, nil
	}

	if c.Kind != decl.KindInterface && c.Kind != decl.KindObject {
		return nil, mergeConflict(c, v, "non-empty %s cannot merge with a variable", c.Kind)
	}

	delegation := decl.HeritageType{Type: v.Type, DelegateName: decl.StubDelegateName}
	members := slices.Clone(c.Members)
	attached := false
	for _, m := range members {
		if comp, ok := m.(*decl.Classifier); ok && comp.Kind == decl.KindCompanionObject {
			comp.Supertypes = append(comp.Supertypes, delegation)
			attached = true
			break
		}
	}
	if !attached {
		members = append(members, &decl.Classifier{
			Kind:       decl.KindCompanionObject,
			Supertypes: []decl.HeritageType{delegation},
		})
	}

	return &decl.Classifier{
		Kind:           decl.KindInterface,
		Name:           c.Name,
		TypeParameters: c.TypeParameters,
		Supertypes:     c.Supertypes,
		Members:        members,
		Annotations:    anns,
		Open:           true,
	}, nil
}
