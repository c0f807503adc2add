package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable color for deterministic test output.
	color.NoColor = true
}

func renderReport(t *testing.T, f *TextFormatter) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, newTestReport()))
	return buf.String()
}

func TestTextFormatter_FindingsView(t *testing.T) {
	out := renderReport(t, &TextFormatter{Show: "findings"})

	assert.Contains(t, out, "privsift")
	assert.Contains(t, out, "testhost")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "[POT]")
	assert.Contains(t, out, "/secretstuff")
	assert.Contains(t, out, "/tmp/rootshell")
	assert.Contains(t, out, "TOP-LEVEL DIRECTORIES")
	assert.Contains(t, out, "SUID FILES")
	assert.Contains(t, out, "2 potential")
	// Findings view hides ok verdicts.
	assert.NotContains(t, out, "/usr/bin/passwd")
}

func TestTextFormatter_ShowAllIncludesOK(t *testing.T) {
	out := renderReport(t, &TextFormatter{Show: "all"})

	assert.Contains(t, out, "/usr/bin/passwd")
	assert.Contains(t, out, "[OK]")
	// The show-all hint is only for the findings view.
	assert.NotContains(t, out, "--show all")
}

func TestTextFormatter_ShowAllRendersEmptyCategories(t *testing.T) {
	// The report has no sgid or recommendation verdicts; the full view
	// still prints their sections so the operator sees they were scanned.
	out := renderReport(t, &TextFormatter{Show: "all"})

	assert.Contains(t, out, "SGID FILES")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "(nothing found)")
}

func TestTextFormatter_FindingsViewSkipsEmptyCategories(t *testing.T) {
	out := renderReport(t, &TextFormatter{Show: "findings"})

	assert.NotContains(t, out, "(nothing found)")
	assert.NotContains(t, out, "SGID FILES")
}

func TestTextFormatter_InfoVerdictShown(t *testing.T) {
	out := renderReport(t, &TextFormatter{Show: "findings"})

	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "sudo -l")
}

func TestTextFormatter_CleanScan(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{Show: "findings"}
	require.NoError(t, f.Write(&buf, newCleanReport()))
	out := buf.String()

	assert.Contains(t, out, "Clean")
	assert.Contains(t, out, "0 potential")
	assert.NotContains(t, out, "[POT]")
}

func TestTextFormatter_CategoryOrderPreserved(t *testing.T) {
	out := renderReport(t, &TextFormatter{Show: "findings"})

	topIdx := strings.Index(out, "TOP-LEVEL DIRECTORIES")
	suidIdx := strings.Index(out, "SUID FILES")
	sudoIdx := strings.Index(out, "SUDO GRANTS")
	require.GreaterOrEqual(t, topIdx, 0)
	assert.Less(t, topIdx, suidIdx)
	assert.Less(t, suidIdx, sudoIdx)
}

func TestTextFormatter_DumbIcons(t *testing.T) {
	out := renderReport(t, &TextFormatter{Show: "findings", Dumb: true})

	assert.NotContains(t, out, "✗")
	assert.NotContains(t, out, "✓")
	assert.Contains(t, out, "x")
}

func TestTextFormatter_WrapLongDetail(t *testing.T) {
	f := &TextFormatter{Width: 60}
	long := strings.Repeat("word ", 30)

	wrapped := f.wrap(strings.TrimSpace(long), 13)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 60)
	}
}

func TestIsDumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.True(t, IsDumbTerm())

	t.Setenv("TERM", "xterm-256color")
	assert.False(t, IsDumbTerm())
}
