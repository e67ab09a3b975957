package translator

import (
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/errors"
)

// UnsupportedNodeError reports a source construct with no defined mapping.
// It is fatal for the current compilation unit.
type UnsupportedNodeError struct {
	Kind   ast.Kind
	Detail string
}

func (e *UnsupportedNodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unsupported node %v", e.Kind)
	}
	return fmt.Sprintf("unsupported node %v: %s", e.Kind, e.Detail)
}

func unsupportedNode(node *ast.Node, format string, args ...any) error {
	var kind ast.Kind
	if node != nil {
		kind = node.Kind
	}
	return errors.WithStack(&UnsupportedNodeError{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	})
}

// MergeConflictError reports two same-named declarations that cannot be
// reconciled. It carries both contributors for diagnostics.
type MergeConflictError struct {
	Left   decl.Member
	Right  decl.Member
	Reason string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("cannot merge %s %q with %s %q: %s",
		decl.KindName(e.Left), e.Left.MemberName(),
		decl.KindName(e.Right), e.Right.MemberName(),
		e.Reason)
}

func mergeConflict(left, right decl.Member, format string, args ...any) error {
	return errors.WithStack(&MergeConflictError{
		Left:   left,
		Right:  right,
		Reason: fmt.Sprintf(format, args...),
	})
}

// InvariantError reports an internal-consistency failure: either malformed
// input or a gap in the merge rule table.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "translation invariant violated: " + e.Reason
}

func invariantViolated(format string, args ...any) error {
	return errors.WithStack(&InvariantError{Reason: fmt.Sprintf(format, args...)})
}
