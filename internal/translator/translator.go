// Package translator maps TypeScript ambient declaration nodes onto the
// output declaration model, applies declaration-merging semantics, and
// resolves export-assignment aliases.
package translator

import (
	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/diagnostic"
	"github.com/tsdecl/tsdecl/internal/typemap"
)

// ScopeConfig carries the visibility rules and predicates one scope is
// translated under. Nested namespaces get a derived config rather than a
// mutated translator.
type ScopeConfig struct {
	// Qualifier is the package qualifier for the resulting PackagePart.
	// Only meaningful at the root scope.
	Qualifier string

	// RequiredModifier is the modifier a declaration must carry to be fully
	// declared in this scope: `declare` at the root, `export` inside
	// namespaces. Declarations lacking it are marked as placeholders.
	RequiredModifier ast.Kind

	// ModuleName is the enclosing external module path, empty at the root.
	ModuleName string

	// IsOwnDeclaration distinguishes "declare this interface" from
	// "augment an existing external type". Nil means everything is own.
	IsOwnDeclaration func(nameNode *ast.Node) bool

	// IsOverride and IsOverrideProperty mark members overriding an inherited
	// signature. Nil means no member is an override.
	IsOverride         func(methodNode *ast.Node) bool
	IsOverrideProperty func(propertyNode *ast.Node) bool
}

// RootConfig returns the configuration for a compilation unit's root scope,
// where the `declare` modifier is required.
func RootConfig(qualifier string) ScopeConfig {
	return ScopeConfig{
		Qualifier:        qualifier,
		RequiredModifier: ast.KindDeclareKeyword,
	}
}

// scope owns the mutable state of one translation scope: the insertion-ordered
// declaration list and the pending export-assignment alias table. Each nested
// namespace gets a fresh scope; nothing is shared between them.
type scope struct {
	cfg    ScopeConfig
	mapper typemap.Mapper
	diags  *diagnostic.Collector

	decls []decl.Member
	// aliases maps an `export =` alias name to the module annotation that
	// must be attached once a matching declaration is found.
	aliases map[string]decl.Annotation
	// overloadArity counts bodiless function declarations per name, so an
	// implementation signature can be discarded when overloads exist.
	overloadArity map[string]int
}

func newScope(cfg ScopeConfig, mapper typemap.Mapper, diags *diagnostic.Collector) *scope {
	return &scope{
		cfg:           cfg,
		mapper:        mapper,
		diags:         diags,
		aliases:       make(map[string]decl.Annotation),
		overloadArity: make(map[string]int),
	}
}

// TranslateSourceFile translates one compilation unit into a fully merged,
// alias-resolved PackagePart.
func TranslateSourceFile(sf *ast.SourceFile, mapper typemap.Mapper, cfg ScopeConfig, diags *diagnostic.Collector) (*decl.PackagePart, error) {
	s := newScope(cfg, mapper, diags)
	if err := s.visitStatements(sf.Statements.Nodes); err != nil {
		return nil, err
	}
	merged, err := s.finish()
	if err != nil {
		return nil, err
	}
	if len(s.aliases) > 0 {
		names := make([]string, 0, len(s.aliases))
		for name := range s.aliases {
			names = append(names, name)
		}
		return nil, invariantViolated("unresolved export assignment aliases at root scope: %v", names)
	}
	return &decl.PackagePart{Qualifier: cfg.Qualifier, Declarations: merged}, nil
}

// finish runs the scope's post-traversal passes: export-assignment
// resolution, then declaration merging. Unresolved aliases stay in s.aliases
// for the caller to propagate or reject.
func (s *scope) finish() ([]decl.Member, error) {
	s.resolveExportAssignments()
	return mergeDeclarations(s.decls)
}

// visitStatements appends the translation of every statement, in encounter
// order, to the scope's declaration list.
func (s *scope) visitStatements(stmts []*ast.Node) error {
	for _, stmt := range stmts {
		if stmt.Kind == ast.KindFunctionDeclaration {
			fn := stmt.AsFunctionDeclaration()
			if fn.Body == nil && fn.Name() != nil {
				s.overloadArity[fn.Name().Text()]++
			}
		}
	}

	for _, stmt := range stmts {
		if err := s.visitStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *scope) visitStatement(stmt *ast.Node) error {
	switch stmt.Kind {
	case ast.KindVariableStatement:
		return s.visitVariableStatement(stmt)
	case ast.KindFunctionDeclaration:
		return s.visitFunctionDeclaration(stmt)
	case ast.KindInterfaceDeclaration:
		return s.visitInterfaceDeclaration(stmt)
	case ast.KindClassDeclaration:
		return s.visitClassDeclaration(stmt)
	case ast.KindEnumDeclaration:
		return s.visitEnumDeclaration(stmt)
	case ast.KindModuleDeclaration:
		return s.visitModuleDeclaration(stmt)
	case ast.KindTypeAliasDeclaration:
		return s.visitTypeAliasDeclaration(stmt)
	case ast.KindExportAssignment:
		return s.visitExportAssignment(stmt)
	default:
		return unsupportedNode(stmt, "no translation for this statement kind")
	}
}

func (s *scope) append(m decl.Member) {
	s.decls = append(s.decls, m)
}

// declarationName extracts the declared name from a name node. Only
// identifiers and string literals name declarations.
func declarationName(node *ast.Node) (string, error) {
	if node == nil {
		return "", unsupportedNode(node, "declaration without a name")
	}
	switch node.Kind {
	case ast.KindIdentifier, ast.KindStringLiteral:
		return node.Text(), nil
	default:
		return "", unsupportedNode(node, "unrecognized declaration name node")
	}
}

func hasModifier(node *ast.Node, kind ast.Kind) bool {
	mods := node.Modifiers()
	if mods == nil {
		return false
	}
	for _, m := range mods.Nodes {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

func (s *scope) isOwn(nameNode *ast.Node) bool {
	if s.cfg.IsOwnDeclaration == nil {
		return true
	}
	return s.cfg.IsOwnDeclaration(nameNode)
}

func (s *scope) isOverride(node *ast.Node) bool {
	return s.cfg.IsOverride != nil && s.cfg.IsOverride(node)
}

func (s *scope) isOverrideProperty(node *ast.Node) bool {
	return s.cfg.IsOverrideProperty != nil && s.cfg.IsOverrideProperty(node)
}
