// Package ownership decides whether a named declaration belongs to the input
// being translated or augments a type declared elsewhere, such as the bundled
// standard library. Augmentations of foreign types become extension members
// instead of fresh classifiers.
package ownership

import (
	"path"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/checker"
)

// Predicate reports whether the declaration behind nameNode is owned by the
// translated input.
type Predicate func(nameNode *ast.Node) bool

// OwnAll treats every declaration as owned. Used in single-file mode, where
// no symbol information is available.
func OwnAll(*ast.Node) bool { return true }

// FromChecker builds a predicate backed by the program's symbol table. A
// declaration is foreign when any site declaring its symbol lives in a
// default library file or outside the given roots: `interface String` in a
// translated file shares its symbol with the bundled lib, so it augments
// rather than declares. Unresolvable names count as owned so that plain
// declarations are never silently demoted.
func FromChecker(c *checker.Checker, rootFiles []string) Predicate {
	roots := make(map[string]struct{}, len(rootFiles))
	for _, f := range rootFiles {
		roots[f] = struct{}{}
	}
	return func(nameNode *ast.Node) bool {
		if nameNode == nil {
			return true
		}
		sym := c.GetSymbolAtLocation(nameNode)
		if sym == nil || len(sym.Declarations) == 0 {
			return true
		}
		for _, d := range sym.Declarations {
			sf := ast.GetSourceFileOfNode(d)
			if sf == nil {
				continue
			}
			name := sf.FileName()
			if isDefaultLibFile(name) {
				return false
			}
			if _, ok := roots[name]; !ok {
				return false
			}
		}
		return true
	}
}

// isDefaultLibFile matches the bundled lib.*.d.ts compiler libraries.
func isDefaultLibFile(fileName string) bool {
	base := path.Base(fileName)
	return strings.HasPrefix(base, "lib.") && strings.HasSuffix(base, ".d.ts")
}
