// Package compiler builds TypeScript programs for translation. It wraps
// program construction, source file selection, and parse diagnostics; no
// emit happens here, the program exists only to be read.
package compiler

import (
	"context"
	"path"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"

	"github.com/tsdecl/tsdecl/internal/errors"
)

// Result holds a bound program and the parsed tsconfig it was built from.
type Result struct {
	Program      *shimcompiler.Program
	ParsedConfig *tsoptions.ParsedCommandLine
}

// ParseTSConfig parses a tsconfig.json using the compiler's native JSONC
// parser, so comments, trailing commas, and extends chains behave exactly as
// they do under tsc.
func ParseTSConfig(fs vfs.FS, cwd string, tsconfigPath string, host shimcompiler.CompilerHost) (*tsoptions.ParsedCommandLine, []Diagnostic, error) {
	resolved := tspath.ResolvePath(cwd, tsconfigPath)
	if !fs.FileExists(resolved) {
		return nil, nil, errors.Newf("could not find tsconfig at %v", resolved)
	}

	parsed, diags := tsoptions.GetParsedCommandLineOfConfigFile(tsconfigPath, &core.CompilerOptions{}, nil, host, nil)
	if len(diags) > 0 {
		return nil, convertDiagnostics(diags), nil
	}
	if parsed != nil && len(parsed.Errors) > 0 {
		return nil, convertDiagnostics(parsed.Errors), nil
	}
	return parsed, nil, nil
}

// BuildProgram parses the tsconfig and constructs a bound single-threaded
// program over it.
func BuildProgram(fs vfs.FS, cwd string, tsconfigPath string, host shimcompiler.CompilerHost) (*Result, []Diagnostic, error) {
	parsed, diags, err := ParseTSConfig(fs, cwd, tsconfigPath, host)
	if err != nil || len(diags) > 0 {
		return nil, diags, err
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsed,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("failed to create program")
	}

	if programDiags := program.GetProgramDiagnostics(); len(programDiags) > 0 {
		return nil, convertDiagnostics(programDiags), nil
	}

	program.BindSourceFiles()
	return &Result{Program: program, ParsedConfig: parsed}, nil, nil
}

// GetTypeChecker returns the program's checker. The release func must be
// called once the checker is no longer needed.
func GetTypeChecker(program *shimcompiler.Program) (*shimchecker.Checker, func(), error) {
	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	if checker == nil {
		return nil, nil, errors.New("failed to obtain type checker")
	}
	return checker, release, nil
}

// SyntacticDiagnostics returns parse errors for all source files. Inputs
// that do not parse are refused before translation starts.
func SyntacticDiagnostics(program *shimcompiler.Program) []*ast.Diagnostic {
	return shimcompiler.Program_GetSyntacticDiagnostics(program, context.Background(), nil)
}

// DeclarationFiles returns the program's ambient declaration files, skipping
// the bundled default libraries. When matches is non-nil it further filters
// by the config's include and exclude globs.
func DeclarationFiles(program *shimcompiler.Program, matches func(path string) bool) []*ast.SourceFile {
	var files []*ast.SourceFile
	for _, f := range program.GetSourceFiles() {
		if !f.IsDeclarationFile {
			continue
		}
		if isBundledLib(f.FileName()) {
			continue
		}
		if matches != nil && !matches(f.FileName()) {
			continue
		}
		files = append(files, f)
	}
	return files
}

func isBundledLib(fileName string) bool {
	base := path.Base(fileName)
	return strings.HasPrefix(base, "lib.") && strings.HasSuffix(base, ".d.ts")
}
