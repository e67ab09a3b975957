// Package typemap converts TypeScript type nodes into target-language type
// expressions. The translator consumes the Mapper interface; Basic is the
// default syntax-only implementation.
package typemap

import (
	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
)

// Mapper converts source type syntax into target type expressions. The
// translator owns no type logic of its own; everything type-shaped funnels
// through this interface.
type Mapper interface {
	// MapType converts a type node. A nil node maps to the dynamic type.
	MapType(node *ast.Node) decl.TypeExpr

	// Nullable wraps a type expression so it also admits null/undefined.
	Nullable(t decl.TypeExpr) decl.TypeExpr

	// MapCallSignature converts a function-like declaration node into one or
	// more call signatures. Implementations may fan a single source signature
	// out into several (e.g. optional-parameter expansions).
	MapCallSignature(node *ast.Node) ([]decl.CallSignature, error)

	// WithTypeParameters returns a mapper scoped to the given generic
	// parameter list, plus the translated parameters. A nil list returns the
	// receiver unchanged.
	WithTypeParameters(params *ast.NodeList) (Mapper, []decl.TypeParameter)
}
