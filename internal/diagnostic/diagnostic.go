// Package diagnostic collects structured warnings and errors produced while
// translating declaration files, keeping the translation itself free of
// logging concerns.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity is the reporting level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Category classifies diagnostics for filtering.
type Category string

const (
	CategoryUnsupportedNode     Category = "unsupported-node"
	CategorySkippedDeclaration  Category = "skipped-declaration"
	CategoryMergeConflict       Category = "merge-conflict"
	CategoryUnresolvedAlias     Category = "unresolved-alias"
	CategoryConfigInvalid       Category = "config-invalid"
	CategoryCompilerUnavailable Category = "compiler-unavailable"
)

// Diagnostic is one collected finding, located when the source position is
// known.
type Diagnostic struct {
	Severity Severity
	Category Category
	File     string
	Line     int // 1-based, 0 when unknown
	Message  string
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.File != "" {
		sb.WriteString(d.File)
		if d.Line > 0 {
			fmt.Fprintf(&sb, ":%d", d.Line)
		}
		sb.WriteString(" - ")
	}
	sb.WriteString(d.Severity.String())
	sb.WriteString(": [")
	sb.WriteString(string(d.Category))
	sb.WriteString("] ")
	sb.WriteString(d.Message)
	return sb.String()
}

// Collector accumulates diagnostics across a translation run. A nil Collector
// discards everything, so callers need not guard their reporting calls.
type Collector struct {
	diagnostics []Diagnostic
	strict      bool // warnings are recorded as errors
	quiet       bool // warnings and infos are dropped
}

func NewCollector(strict, quiet bool) *Collector {
	return &Collector{strict: strict, quiet: quiet}
}

// Warn records a warning, promoted to an error in strict mode.
func (c *Collector) Warn(category Category, file string, line int, message string) {
	if c == nil || c.quiet {
		return
	}
	sev := SeverityWarning
	if c.strict {
		sev = SeverityError
	}
	c.add(sev, category, file, line, message)
}

// Error records an error. Errors are kept even in quiet mode.
func (c *Collector) Error(category Category, file string, line int, message string) {
	if c == nil {
		return
	}
	c.add(SeverityError, category, file, line, message)
}

func (c *Collector) Info(category Category, file string, line int, message string) {
	if c == nil || c.quiet {
		return
	}
	c.add(SeverityInfo, category, file, line, message)
}

func (c *Collector) add(sev Severity, category Category, file string, line int, message string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: sev,
		Category: category,
		File:     file,
		Line:     line,
		Message:  message,
	})
}

func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

func (c *Collector) HasErrors() bool {
	return c.count(SeverityError) > 0
}

func (c *Collector) count(sev Severity) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, d := range c.diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// FormatAll renders every diagnostic on its own line.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a count line like "1 error(s), 2 warning(s)".
func (c *Collector) Summary() string {
	if c == nil {
		return ""
	}
	var parts []string
	if n := c.count(SeverityError); n > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", n))
	}
	if n := c.count(SeverityWarning); n > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", n))
	}
	if len(parts) == 0 {
		return "no issues"
	}
	return strings.Join(parts, ", ")
}
