package translator

import (
	"slices"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
)

// visitModuleDeclaration translates a module/namespace declaration. The body
// is visited by a fresh child scope where the `export` modifier marks own
// declarations. A string-named external module whose contents are purely
// re-exports folds flat into this scope; everything else is wrapped in nested
// namespace objects.
func (s *scope) visitModuleDeclaration(stmt *ast.Node) error {
	md := stmt.AsModuleDeclaration()
	name, err := declarationName(md.Name())
	if err != nil {
		return err
	}
	isExternal := md.Name().Kind == ast.KindStringLiteral

	// Walk the chain of dotted namespace names down to the first block body.
	var qualifiers []string
	leaf := name
	body := md.Body
	for body != nil && body.Kind == ast.KindModuleDeclaration {
		inner := body.AsModuleDeclaration()
		innerName, nerr := declarationName(inner.Name())
		if nerr != nil {
			return nerr
		}
		qualifiers = append(qualifiers, leaf)
		leaf = innerName
		body = inner.Body
	}

	moduleName := s.cfg.ModuleName
	if isExternal {
		moduleName = name
	}

	child := newScope(ScopeConfig{
		RequiredModifier:   ast.KindExportKeyword,
		ModuleName:         moduleName,
		IsOwnDeclaration:   s.cfg.IsOwnDeclaration,
		IsOverride:         s.cfg.IsOverride,
		IsOverrideProperty: s.cfg.IsOverrideProperty,
	}, s.mapper, s.diags)

	if body != nil {
		if body.Kind != ast.KindModuleBlock {
			return unsupportedNode(body, "module body is not a block")
		}
		if err := child.visitStatements(body.AsModuleBlock().Statements.Nodes); err != nil {
			return err
		}
	}

	merged, err := child.finish()
	if err != nil {
		return err
	}
	// Aliases the child could not resolve belong to this scope now.
	for alias, ann := range child.aliases {
		s.aliases[alias] = ann
	}

	if isExternal && (allModuleTagged(merged, name) || allPlaceholderOrTypeOnly(merged)) {
		for _, m := range merged {
			s.append(m)
		}
		return nil
	}

	anns := []decl.Annotation{decl.ModuleAnnotation(moduleName)}
	s.append(nestNamespaces(qualifiers, leaf, merged, anns))
	return nil
}

// allModuleTagged reports whether every declaration carries a module
// annotation naming the given module.
func allModuleTagged(members []decl.Member, moduleName string) bool {
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		ann, ok := decl.FindAnnotation(decl.AnnotationsOf(m), decl.AnnotationModule)
		if !ok || !slices.Equal(ann.Arguments, []string{moduleName}) {
			return false
		}
	}
	return true
}

// allPlaceholderOrTypeOnly reports whether every declaration is a synthesized
// placeholder or a purely type-level entity (interface or type alias), i.e.
// the module contributes no runtime values of its own.
func allPlaceholderOrTypeOnly(members []decl.Member) bool {
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		if decl.HasAnnotation(decl.AnnotationsOf(m), decl.AnnotationPlaceholder) {
			continue
		}
		switch v := m.(type) {
		case *decl.TypeAlias:
		case *decl.Classifier:
			if v.Kind != decl.KindInterface {
				return false
			}
		default:
			return false
		}
	}
	return true
}
