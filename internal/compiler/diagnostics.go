package compiler

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"
)

// Diagnostic is a located compiler message, detached from the program that
// produced it.
type Diagnostic struct {
	FilePath string
	Line     int // 1-based, 0 when unknown
	Message  string
}

func (d Diagnostic) String() string {
	switch {
	case d.FilePath != "" && d.Line > 0:
		return fmt.Sprintf("%s:%d: %s", d.FilePath, d.Line, d.Message)
	case d.FilePath != "":
		return fmt.Sprintf("%s: %s", d.FilePath, d.Message)
	default:
		return d.Message
	}
}

// PositionOf returns the 1-based line of a node within its source file.
func PositionOf(node *ast.Node) (file string, line int) {
	sf := ast.GetSourceFileOfNode(node)
	if sf == nil {
		return "", 0
	}
	l, _ := shimscanner.GetECMALineAndCharacterOfPosition(sf, node.Pos())
	return sf.FileName(), l + 1
}

// convertDiagnostics detaches compiler diagnostics into the local type.
func convertDiagnostics(tsdiags []*ast.Diagnostic) []Diagnostic {
	diags := make([]Diagnostic, len(tsdiags))
	for i, d := range tsdiags {
		var filePath string
		var line int
		if d.File() != nil {
			filePath = d.File().FileName()
			l, _ := shimscanner.GetECMALineAndCharacterOfPosition(d.File(), d.Pos())
			line = l + 1
		}
		diags[i] = Diagnostic{FilePath: filePath, Line: line, Message: d.String()}
	}
	return diags
}

// WriteDiagnostics formats diagnostics in tsc's plain style, one per line,
// with paths shown relative to cwd when possible.
func WriteDiagnostics(w io.Writer, diags []*ast.Diagnostic, cwd string) {
	for _, d := range diags {
		if d.File() != nil {
			line, char := shimscanner.GetECMALineAndCharacterOfPosition(d.File(), d.Pos())
			fmt.Fprintf(w, "%s(%d,%d): ", relativePath(d.File().FileName(), cwd), line+1, char+1)
		}
		fmt.Fprintf(w, "TS%d: %s\n", d.Code(), d.String())
	}
}

func relativePath(absPath string, cwd string) string {
	if cwd == "" {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
