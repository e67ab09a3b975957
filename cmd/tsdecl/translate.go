package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/parser"
	"github.com/microsoft/typescript-go/shim/tspath"
	"go.uber.org/zap"

	"github.com/tsdecl/tsdecl/internal/compiler"
	"github.com/tsdecl/tsdecl/internal/config"
	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/diagnostic"
	"github.com/tsdecl/tsdecl/internal/ownership"
	"github.com/tsdecl/tsdecl/internal/translator"
	"github.com/tsdecl/tsdecl/internal/typemap"
)

func runTranslate(args []string) int {
	flags := flag.NewFlagSet("translate", flag.ExitOnError)

	var (
		configPath   string
		tsconfigPath string
		qualifier    string
		outDir       string
		singleFile   bool
		strict       bool
		quiet        bool
	)

	flags.StringVar(&configPath, "config", "", "Path to tsdecl config file (tsdecl.json)")
	flags.StringVar(&tsconfigPath, "project", "tsconfig.json", "Path to tsconfig.json (or use -p)")
	flags.StringVar(&tsconfigPath, "p", "tsconfig.json", "Path to tsconfig.json (shorthand for --project)")
	flags.StringVar(&qualifier, "qualifier", "", "Package qualifier for translated units")
	flags.StringVar(&outDir, "out", "", "Output directory (overrides config)")
	flags.BoolVar(&singleFile, "single-file", false, "Translate listed files without program-wide symbols")
	flags.BoolVar(&strict, "strict", false, "Promote warnings to errors")
	flags.BoolVar(&quiet, "quiet", false, "Suppress warnings")

	flags.Usage = func() {
		fmt.Println("Usage: tsdecl translate [flags] [files]")
		fmt.Println()
		fmt.Println("Flags:")
		flags.PrintDefaults()
	}
	flags.Parse(args)

	logger := newLogger(quiet)
	defer logger.Sync()
	log := logger.Sugar()

	cwd, err := os.Getwd()
	if err != nil {
		log.Errorf("could not get working directory: %v", err)
		return 1
	}

	cfg, err := loadConfig(cwd, configPath, log)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	if qualifier != "" {
		cfg.Qualifier = qualifier
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	cfg.Strict = cfg.Strict || strict
	cfg.Quiet = cfg.Quiet || quiet
	cfg.SingleFile = cfg.SingleFile || singleFile

	diags := diagnostic.NewCollector(cfg.Strict, cfg.Quiet)

	var exitCode int
	if cfg.SingleFile || flags.NArg() > 0 {
		exitCode = translateFiles(flags.Args(), cfg, diags, log)
	} else {
		exitCode = translateProject(cwd, tsconfigPath, cfg, diags, log)
	}

	if out := diags.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	if summary := diags.Summary(); summary != "no issues" {
		log.Infof("finished: %s", summary)
	}
	if diags.HasErrors() {
		return 1
	}
	return exitCode
}

func newLogger(quiet bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig loads the config from the explicit path, the default tsdecl.json
// next to cwd, or falls back to defaults when neither exists.
func loadConfig(cwd, configPath string, log *zap.SugaredLogger) (*config.Config, error) {
	if configPath != "" {
		resolved := configPath
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(cwd, resolved)
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded config from %s", configPath)
		return cfg, nil
	}

	defaultPath := filepath.Join(cwd, "tsdecl.json")
	if _, err := os.Stat(defaultPath); err == nil {
		cfg, err := config.Load(defaultPath)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded config from %s", filepath.Base(defaultPath))
		return cfg, nil
	}

	cfg := config.DefaultConfig()
	return &cfg, nil
}

// translateProject builds a full program so augmentation targets and
// export-assignment aliases resolve through the symbol table.
func translateProject(cwd, tsconfigPath string, cfg *config.Config, diags *diagnostic.Collector, log *zap.SugaredLogger) int {
	fs := compiler.NewFS()
	host := compiler.NewHost(cwd, fs)

	log.Infof("building program from %s", tsconfigPath)
	result, compileDiags, err := compiler.BuildProgram(fs, cwd, tsconfigPath, host)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	if len(compileDiags) > 0 {
		for _, d := range compileDiags {
			fmt.Fprintln(os.Stderr, d.String())
		}
		return 1
	}

	if syntax := compiler.SyntacticDiagnostics(result.Program); len(syntax) > 0 {
		compiler.WriteDiagnostics(os.Stderr, syntax, cwd)
		return 1
	}

	checker, release, err := compiler.GetTypeChecker(result.Program)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	defer release()

	own := ownership.FromChecker(checker, result.ParsedConfig.FileNames())

	matcher, err := cfg.Matcher()
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	matches := func(path string) bool {
		rel, relErr := filepath.Rel(cwd, path)
		if relErr != nil {
			rel = path
		}
		return matcher.Matches(rel)
	}

	files := compiler.DeclarationFiles(result.Program, matches)
	if len(files) == 0 {
		log.Warnf("no declaration files matched the include patterns")
		return 0
	}

	failed := false
	for _, sf := range files {
		if !translateOne(sf, cfg, own, diags, log) {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// translateFiles parses and translates each file in isolation. Without a
// program there is no symbol table, so every declaration counts as owned.
func translateFiles(paths []string, cfg *config.Config, diags *diagnostic.Collector, log *zap.SugaredLogger) int {
	if len(paths) == 0 {
		log.Errorf("single-file mode requires at least one input file")
		return 1
	}

	failed := false
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Errorf("read %s: %v", p, err)
			failed = true
			continue
		}
		sf := parser.ParseSourceFile(ast.SourceFileParseOptions{
			FileName: p,
			Path:     tspath.Path(p),
		}, string(data), core.ScriptKindTS)
		if sf == nil {
			log.Errorf("parse %s: no source file produced", p)
			failed = true
			continue
		}
		if !translateOne(sf, cfg, ownership.OwnAll, diags, log) {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func translateOne(sf *ast.SourceFile, cfg *config.Config, own ownership.Predicate, diags *diagnostic.Collector, log *zap.SugaredLogger) bool {
	rootCfg := translator.RootConfig(cfg.Qualifier)
	rootCfg.IsOwnDeclaration = own

	part, err := translator.TranslateSourceFile(sf, typemap.NewBasic(), rootCfg, diags)
	if err != nil {
		log.Errorf("translate %s: %v", sf.FileName(), err)
		return false
	}

	outPath := outputPath(cfg.OutDir, sf.FileName())
	if err := writePart(outPath, part); err != nil {
		log.Errorf("write %s: %v", outPath, err)
		return false
	}
	log.Infof("translated %s -> %s (%d declarations)", sf.FileName(), outPath, len(part.Declarations))
	return true
}

// outputPath maps an input declaration file to its model file in outDir.
// "types/jquery.d.ts" becomes "<outDir>/jquery.json".
func outputPath(outDir, fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, ".d.ts")
	base = strings.TrimSuffix(base, ".ts")
	return filepath.Join(outDir, base+".json")
}

func writePart(path string, part *decl.PackagePart) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(part, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
