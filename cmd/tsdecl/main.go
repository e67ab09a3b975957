package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		return runTranslate(os.Args[1:])
	}

	switch os.Args[1] {
	case "translate":
		return runTranslate(os.Args[2:])
	case "--version", "-v":
		fmt.Println("tsdecl", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		if strings.HasPrefix(os.Args[1], "-") {
			return runTranslate(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("tsdecl - translate TypeScript ambient declarations into a portable declaration model")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tsdecl [flags]                    Translate project (default)")
	fmt.Println("  tsdecl translate [flags] [files]  Translate project or individual files")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Translate Flags:")
	fmt.Println("  --project, -p <path>   Path to tsconfig.json (default: tsconfig.json)")
	fmt.Println("  --config <path>        Path to tsdecl.json")
	fmt.Println("  --qualifier <name>     Package qualifier for translated units")
	fmt.Println("  --out <dir>            Output directory (overrides config)")
	fmt.Println("  --single-file          Translate listed files without program-wide symbols")
	fmt.Println("  --strict               Promote warnings to errors")
	fmt.Println("  --quiet                Suppress warnings")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tsdecl")
	fmt.Println("  tsdecl translate --project tsconfig.json --qualifier jquery")
	fmt.Println("  tsdecl translate --single-file types/jquery.d.ts")
	fmt.Println()
}
