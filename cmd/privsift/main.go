// Package main is the entry point for privsift — sift the box before someone else does.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	usrdetect "github.com/ancients-collective/privsift/internal/context"
	"github.com/ancients-collective/privsift/internal/fsfact"
	"github.com/ancients-collective/privsift/internal/output"
	"github.com/ancients-collective/privsift/internal/policy"
	"github.com/ancients-collective/privsift/internal/probe"
	"github.com/ancients-collective/privsift/internal/rules"
	"github.com/ancients-collective/privsift/internal/scan"
	"github.com/ancients-collective/privsift/internal/types"
)

// version is set at build time via -ldflags. The default is a dev fallback
// for plain `go install` or `go run` usage.
var version = "1.0.0"

// Config holds all parsed CLI argument values.
type Config struct {
	Save      bool
	Help      bool
	Show      string
	Format    string
	NoColor   bool
	Root      string
	OneDevice bool
	Category  string
	RulesFile string
	Quiet     bool
}

// parseArgs parses command-line arguments permissively: any argument that is
// not recognized is ignored, never rejected. This mirrors the historical
// tool's behavior so existing invocations keep working; do not tighten it to
// strict flag parsing. Values attach with "--flag=value" or "--flag value".
func parseArgs(args []string) *Config {
	cfg := &Config{
		Show:      "findings",
		Format:    "text",
		Root:      "/",
		OneDevice: true,
	}

	takeValue := func(i *int, arg, name string) (string, bool) {
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v, true
		}
		if arg == name && *i+1 < len(args) {
			*i++
			return args[*i], true
		}
		return "", false
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--save":
			cfg.Save = true
		case arg == "-h" || arg == "--help":
			cfg.Help = true
		case arg == "--no-color":
			cfg.NoColor = true
		case arg == "--quiet" || arg == "-q":
			cfg.Quiet = true
		case arg == "--all-devices":
			cfg.OneDevice = false
		default:
			if v, ok := takeValue(&i, arg, "--show"); ok {
				cfg.Show = v
			} else if v, ok := takeValue(&i, arg, "--format"); ok {
				cfg.Format = v
			} else if v, ok := takeValue(&i, arg, "--root"); ok {
				cfg.Root = v
			} else if v, ok := takeValue(&i, arg, "--category"); ok {
				cfg.Category = v
			} else if v, ok := takeValue(&i, arg, "--rules"); ok {
				cfg.RulesFile = v
			}
			// Anything else is ignored by design.
		}
	}
	return cfg
}

func usage(w *os.File) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  privsift — local privilege-escalation reconnaissance\n")
	fmt.Fprintf(w, "  Sift the box before someone else does\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Usage: privsift [options]\n\n")
	fmt.Fprintf(w, "  Options:\n")
	fmt.Fprintf(w, "    --save               Also write the report to privsift-<user>-<time>.txt\n")
	fmt.Fprintf(w, "    --show <mode>        Output filter: findings, all (default: findings)\n")
	fmt.Fprintf(w, "    --format <type>      Output format: text, json, jsonl (default: text)\n")
	fmt.Fprintf(w, "    --root <path>        Scan root (default: /)\n")
	fmt.Fprintf(w, "    --all-devices        Cross mount points (default: stay on one device)\n")
	fmt.Fprintf(w, "    --category <name>    Run a single check category\n")
	fmt.Fprintf(w, "    --rules <file>       YAML ruleset overrides\n")
	fmt.Fprintf(w, "    --no-color           Disable colored output\n")
	fmt.Fprintf(w, "    -q, --quiet          Suppress console output\n")
	fmt.Fprintf(w, "    -h, --help           Show this help and exit\n")
	fmt.Fprintf(w, "\n  Categories:\n")
	for _, c := range types.CategoryNames() {
		fmt.Fprintf(w, "    %s\n", c)
	}
	fmt.Fprintf(w, "\n  Unrecognized arguments are ignored.\n")
	fmt.Fprintf(w, "\n  Examples:\n")
	fmt.Fprintf(w, "    privsift                         Scan and print findings\n")
	fmt.Fprintf(w, "    privsift --save                  Scan and persist the report\n")
	fmt.Fprintf(w, "    privsift --show all              Show every classified entry\n")
	fmt.Fprintf(w, "    privsift --category suid         Run only the SUID check\n")
	fmt.Fprintf(w, "    privsift --format jsonl -q       JSONL for log pipelines\n")
	fmt.Fprintf(w, "\n")
}

func main() {
	os.Exit(run(parseArgs(os.Args[1:])))
}

// run executes the scan with the given configuration and returns an exit
// code. The scan itself is best-effort and always exits 0; only an invalid
// recognized flag value, a bad rules file, or a failed --save exits 1.
func run(cfg *Config) int {
	scanStart := time.Now()

	if cfg.Help {
		usage(os.Stdout)
		return 0
	}

	if code := validateConfig(cfg); code >= 0 {
		return code
	}

	isDumb := output.IsDumbTerm()
	if cfg.NoColor || cfg.Format != "text" || isDumb {
		color.NoColor = true
	}

	userCtx, warnings, err := usrdetect.DetectUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ Failed to detect invoking user: %v\n", err)
		return 1
	}
	if !cfg.Quiet {
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "  ⚠ %s\n", w)
		}
	}

	ruleset := policy.DefaultRuleset()
	if cfg.RulesFile != "" {
		ruleset, err = rules.Load(cfg.RulesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
			return 1
		}
	}

	showProgress := cfg.Format == "text" && !cfg.Quiet
	var progress io.Writer
	if showProgress {
		progress = os.Stderr
	}

	scanner := &scan.Scanner{
		Provider: fsfact.NewProvider(cfg.Root, cfg.OneDevice),
		Rules:    ruleset,
		User:     userCtx,
		Prober:   probe.NewSudoProbe(),
		Only:     types.Category(cfg.Category),
		Progress: progress,
	}

	collector := output.NewCollector()
	if err := scanner.Run(context.Background(), collector); err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ Scan aborted: %v\n", err)
		return 1
	}
	if showProgress {
		fmt.Fprintf(os.Stderr, "\r  Scanning... done              \n")
	}

	summary := collector.Summary()
	summary.DurationMS = time.Since(scanStart).Milliseconds()

	report := &types.ScanReport{
		Version:   version,
		Timestamp: scanStart,
		System:    usrdetect.DetectHost(cfg.Root, cfg.OneDevice, userCtx),
		Summary:   summary,
		Groups:    collector.Groups(),
	}

	formatter := newFormatter(cfg, isDumb)
	if !cfg.Quiet {
		if err := formatter.Write(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Failed to write output: %v\n", err)
			return 1
		}
	}

	if cfg.Save {
		name := output.ReportFileName(userCtx.Username, scanStart)
		if err := output.SaveReport(name, report, formatter); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
			return 1
		}
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "  ✓ Report written to %s\n", name)
		}
	}

	return 0
}

// validateConfig checks the values of recognized flags. Unknown arguments
// were already ignored by parseArgs; a recognized flag with a bad value is a
// genuine operator mistake and fails loudly. Returns -1 when valid.
func validateConfig(cfg *Config) int {
	switch cfg.Show {
	case "findings", "all":
	default:
		fmt.Fprintf(os.Stderr, "  ✗ Invalid --show value %q (must be findings or all)\n", cfg.Show)
		return 1
	}
	switch cfg.Format {
	case "text", "json", "jsonl":
	default:
		fmt.Fprintf(os.Stderr, "  ✗ Invalid --format value %q (must be text, json, or jsonl)\n", cfg.Format)
		return 1
	}
	if cfg.Category != "" && !validCategory(cfg.Category) {
		fmt.Fprintf(os.Stderr, "  ✗ No check category named %q\n", cfg.Category)
		if suggestions := suggestCategories(cfg.Category); len(suggestions) > 0 {
			fmt.Fprintf(os.Stderr, "\n  Did you mean:\n")
			for _, s := range suggestions {
				fmt.Fprintf(os.Stderr, "    • %s\n", s)
			}
		}
		fmt.Fprintf(os.Stderr, "\n  Use --help to see all categories.\n")
		return 1
	}
	return -1
}

func validCategory(name string) bool {
	for _, c := range types.CategoryNames() {
		if name == c {
			return true
		}
	}
	return false
}

// newFormatter picks the output formatter for the configured format.
func newFormatter(cfg *Config, isDumb bool) output.Formatter {
	switch cfg.Format {
	case "json":
		return &output.JSONFormatter{}
	case "jsonl":
		return &output.JSONLFormatter{}
	default:
		termWidth := 0
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				termWidth = tw
			}
		}
		return &output.TextFormatter{
			Show:  cfg.Show,
			Width: termWidth,
			Dumb:  isDumb,
		}
	}
}
