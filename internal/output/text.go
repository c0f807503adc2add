package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ancients-collective/privsift/internal/types"
	"github.com/fatih/color"
)

// Layout constants. Every result line follows the same column grid:
//
//	margin │ icon │ badge │ path ...
//	                      └ detail lines indent to colDetail
const (
	colMargin  = 4   // left margin (spaces) for result lines
	badgeWidth = 7   // visible width of a padded badge, e.g. "[POT]  "
	colDetail  = 13  // column where detail lines start
	maxLine    = 110 // hard wrap cap, even on ultra-wide terminals
	ruleWidth  = 64  // width of horizontal divider rules
)

// TextFormatter writes a colored, human-readable scan report.
type TextFormatter struct {
	Show  string // "findings" (default) or "all"
	Width int    // terminal width for text wrapping; 0 = unknown
	Dumb  bool   // TERM=dumb — use single-char ASCII fallback icons
}

// Color helpers — each returns a sprint function.
var (
	cBold      = color.New(color.Bold).SprintFunc()
	cGreen     = color.New(color.FgGreen).SprintFunc()
	cRed       = color.New(color.FgRed).SprintFunc()
	cCyan      = color.New(color.FgCyan).SprintFunc()
	cDim       = color.New(color.Faint).SprintFunc()
	cRedBold   = color.New(color.FgRed, color.Bold).SprintFunc()
	cGreenBold = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// IsDumbTerm returns true when the terminal doesn't support Unicode.
func IsDumbTerm() bool {
	t := os.Getenv("TERM")
	return t == "dumb" || t == ""
}

// categoryTitles maps categories to section headings.
var categoryTitles = map[types.Category]string{
	types.CategoryTopLevelDir:       "TOP-LEVEL DIRECTORIES",
	types.CategoryWorldWritableDir:  "WORLD-WRITABLE DIRECTORIES",
	types.CategoryReachableExec:     "REACHABLE EXECUTABLES",
	types.CategorySuid:              "SUID FILES",
	types.CategorySgid:              "SGID FILES",
	types.CategorySudoGrant:         "SUDO GRANTS",
	types.CategoryRootOwnedWritable: "ROOT-OWNED WRITABLE FILES",
	types.CategoryRecommendation:    "RECOMMENDATIONS",
}

// Write renders the full text report.
func (f *TextFormatter) Write(w io.Writer, report *types.ScanReport) error {
	f.writeHeader(w, report)
	f.writeSystem(w, report)
	f.writeGroups(w, report)
	f.writeSummary(w, report)
	f.writeHints(w, report)
	fmt.Fprintln(w)
	return nil
}

func (f *TextFormatter) writeHeader(w io.Writer, r *types.ScanReport) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s v%s\n", cBold("privsift"), r.Version)
	fmt.Fprintf(w, "  %s\n", cDim("Sift the box before someone else does"))
	fmt.Fprintf(w, "  %s %s\n", cDim("Scan started:"), r.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintln(w)
}

func (f *TextFormatter) writeSystem(w io.Writer, r *types.ScanReport) {
	sys := r.System
	fmt.Fprintf(w, "  %s\n", cBold("▸ System"))
	fmt.Fprintf(w, "    Host:   %s (%s)\n", sys.Hostname, sys.Arch)
	if sys.Kernel != "" {
		fmt.Fprintf(w, "    Kernel: %s\n", sys.Kernel)
	}
	if sys.Distro != "" {
		fmt.Fprintf(w, "    Distro: %s\n", sys.Distro)
	}
	scope := sys.Root
	if sys.OneDevice {
		scope += " (one device)"
	}
	fmt.Fprintf(w, "    Scope:  %s\n", scope)
	fmt.Fprintf(w, "    User:   %s (uid=%d gid=%d)\n", sys.User.Username, sys.User.UID, sys.User.GID)
	fmt.Fprintln(w)
	if sys.User.UID == 0 {
		fmt.Fprintf(w, "  %s %s\n", cCyan(f.icon("info")),
			cDim("Running as root — every file is writable, writability findings are not meaningful"))
		fmt.Fprintln(w)
	}
}

func (f *TextFormatter) writeGroups(w io.Writer, r *types.ScanReport) {
	if f.Show != "all" {
		for _, g := range r.Groups {
			shown := findingsOnly(g.Verdicts)
			if len(shown) == 0 {
				continue
			}
			f.writeCategoryHeader(w, g.Category)
			for _, v := range shown {
				f.writeVerdictLine(w, v)
			}
			fmt.Fprintln(w)
		}
		return
	}

	// The full-partition view renders every category, so an empty section
	// tells the operator "scanned, nothing matched" rather than vanishing.
	byCategory := make(map[types.Category][]types.Verdict, len(r.Groups))
	for _, g := range r.Groups {
		byCategory[g.Category] = g.Verdicts
	}
	for _, cat := range types.CategoryOrder {
		f.writeCategoryHeader(w, cat)
		verdicts := byCategory[cat]
		if len(verdicts) == 0 {
			fmt.Fprintf(w, "%s%s\n", colPad(colMargin), cDim("(nothing found)"))
			fmt.Fprintln(w)
			continue
		}
		for _, v := range verdicts {
			f.writeVerdictLine(w, v)
		}
		fmt.Fprintln(w)
	}
}

// findingsOnly keeps potential and info verdicts; ok verdicts are the
// expected bulk of a partition and only shown with --show all.
func findingsOnly(verdicts []types.Verdict) []types.Verdict {
	var out []types.Verdict
	for _, v := range verdicts {
		if v.Severity != types.SeverityOK {
			out = append(out, v)
		}
	}
	return out
}

func (f *TextFormatter) writeCategoryHeader(w io.Writer, cat types.Category) {
	label := categoryTitles[cat]
	if label == "" {
		label = strings.ToUpper(string(cat))
	}
	fill := ruleWidth - 4 - len(label)
	if fill < 1 {
		fill = 1
	}
	fmt.Fprintf(w, "%s%s %s %s\n", colPad(colMargin), cDim("──"), cBold(label), cDim(strings.Repeat("─", fill)))
	fmt.Fprintln(w)
}

func (f *TextFormatter) writeVerdictLine(w io.Writer, v types.Verdict) {
	fmt.Fprintf(w, "%s%s %s %s\n",
		colPad(colMargin), f.severityIcon(v.Severity), f.severityBadge(v.Severity), v.Path)
	if v.Detail != "" {
		fmt.Fprintf(w, "%s%s\n", colPad(colDetail), cDim(f.wrap(v.Detail, colDetail)))
	}
}

func (f *TextFormatter) writeSummary(w io.Writer, r *types.ScanReport) {
	rule := cDim(strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "  %s\n", rule)

	s := r.Summary
	if s.Potential == 0 {
		fmt.Fprintf(w, "  %s %s\n", cGreenBold(f.icon("pass")),
			cGreenBold("Clean — no potential escalation vectors found"))
	} else {
		fmt.Fprintf(w, "  %s %s\n", cRedBold(f.icon("warn")),
			cRedBold(fmt.Sprintf("%d potential escalation vector(s) require attention", s.Potential)))
	}

	fmt.Fprintf(w, "  %s  %s · %s · %s\n",
		cBold("Summary:"),
		cRedBold(fmt.Sprintf("%d potential", s.Potential)),
		cGreenBold(fmt.Sprintf("%d ok", s.OK)),
		cDim(fmt.Sprintf("%d info", s.Info)))

	dur := fmt.Sprintf("%.1fs", float64(s.DurationMS)/1000.0)
	fmt.Fprintf(w, "  %s  %s\n", cDim("Completed in"), cBold(dur))
	fmt.Fprintf(w, "  %s\n", rule)
}

func (f *TextFormatter) writeHints(w io.Writer, r *types.ScanReport) {
	if f.Show == "all" {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", cDim("›"), cDim("Use --show all to see every classified entry"))
}

func (f *TextFormatter) wrapWidth() int {
	if f.Width > 0 && f.Width < maxLine {
		return f.Width
	}
	return maxLine
}

// wrap breaks text at word boundaries so continuation lines align at startCol.
func (f *TextFormatter) wrap(text string, startCol int) string {
	w := f.wrapWidth()
	if startCol+len(text) <= w {
		return text
	}
	avail := w - startCol
	if avail < 20 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	pad := strings.Repeat(" ", startCol)
	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > avail {
			b.WriteByte('\n')
			b.WriteString(pad)
			b.WriteString(word)
			lineLen = len(word)
		} else {
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + len(word)
		}
	}
	return b.String()
}

func (f *TextFormatter) icon(name string) string {
	if f.Dumb {
		switch name {
		case "pass":
			return "+"
		case "fail":
			return "x"
		case "warn":
			return "!"
		case "info":
			return "i"
		default:
			return "?"
		}
	}
	switch name {
	case "pass":
		return "✓"
	case "fail":
		return "✗"
	case "warn":
		return "⚠"
	case "info":
		return "ℹ"
	default:
		return "?"
	}
}

func (f *TextFormatter) severityIcon(s types.Severity) string {
	switch s {
	case types.SeverityPotential:
		return cRed(f.icon("fail"))
	case types.SeverityOK:
		return cGreen(f.icon("pass"))
	case types.SeverityInfo:
		return cCyan(f.icon("info"))
	default:
		return "?"
	}
}

func (f *TextFormatter) severityBadge(s types.Severity) string {
	var raw string
	switch s {
	case types.SeverityPotential:
		raw = "[POT]"
	case types.SeverityOK:
		raw = "[OK]"
	case types.SeverityInfo:
		raw = "[INFO]"
	default:
		raw = "[----]"
	}
	padded := fmt.Sprintf("%-*s", badgeWidth, raw)
	switch s {
	case types.SeverityPotential:
		return cRedBold(padded)
	case types.SeverityOK:
		return cGreen(padded)
	case types.SeverityInfo:
		return cCyan(padded)
	default:
		return padded
	}
}

func colPad(n int) string {
	return strings.Repeat(" ", n)
}
