package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Category: CategoryUnsupportedNode,
		File:     "lib/global.d.ts",
		Line:     12,
		Message:  "no translation for this statement kind",
	}

	s := d.String()
	assert.Contains(t, s, "lib/global.d.ts:12")
	assert.Contains(t, s, "warning")
	assert.Contains(t, s, "[unsupported-node]")
	assert.Contains(t, s, "no translation")
}

func TestCollectorWarnAndError(t *testing.T) {
	c := NewCollector(false, false)
	c.Warn(CategorySkippedDeclaration, "a.d.ts", 3, "unnamed class skipped")
	c.Error(CategoryConfigInvalid, "", 0, "missing qualifier")

	require.Len(t, c.Diagnostics(), 2)
	assert.True(t, c.HasErrors())
	assert.Equal(t, "1 error(s), 1 warning(s)", c.Summary())
}

func TestCollectorStrictPromotesWarnings(t *testing.T) {
	c := NewCollector(true, false)
	c.Warn(CategorySkippedDeclaration, "a.d.ts", 1, "skipped")

	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, SeverityError, c.Diagnostics()[0].Severity)
	assert.True(t, c.HasErrors())
}

func TestCollectorQuietKeepsErrors(t *testing.T) {
	c := NewCollector(false, true)
	c.Warn(CategorySkippedDeclaration, "a.d.ts", 1, "dropped")
	c.Info(CategoryUnresolvedAlias, "a.d.ts", 2, "dropped too")
	c.Error(CategoryMergeConflict, "a.d.ts", 3, "kept")

	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, SeverityError, c.Diagnostics()[0].Severity)
}

func TestCollectorNilSafe(t *testing.T) {
	var c *Collector
	c.Warn(CategorySkippedDeclaration, "", 0, "ignored")
	c.Error(CategoryConfigInvalid, "", 0, "ignored")

	assert.False(t, c.HasErrors())
	assert.Empty(t, c.Diagnostics())
	assert.Empty(t, c.Summary())
	assert.Empty(t, c.FormatAll())
}

func TestCollectorFormatAll(t *testing.T) {
	c := NewCollector(false, false)
	c.Warn(CategoryUnsupportedNode, "x.d.ts", 7, "construct signature")
	c.Warn(CategoryUnsupportedNode, "y.d.ts", 0, "computed enum initializer")

	out := c.FormatAll()
	assert.Contains(t, out, "x.d.ts:7")
	assert.Contains(t, out, "y.d.ts - warning")
}

func TestCollectorSummaryEmpty(t *testing.T) {
	c := NewCollector(false, false)
	assert.Equal(t, "no issues", c.Summary())
}
