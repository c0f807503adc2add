// Package scan drives a full reconnaissance pass: it queries the filesystem
// fact provider once per check category, pipes the facts through the matching
// classifier, and forwards every verdict to the finding sink in a fixed
// category order.
package scan

import (
	"context"
	"fmt"
	"io"

	"github.com/ancients-collective/privsift/internal/classify"
	"github.com/ancients-collective/privsift/internal/fsfact"
	"github.com/ancients-collective/privsift/internal/output"
	"github.com/ancients-collective/privsift/internal/policy"
	"github.com/ancients-collective/privsift/internal/types"
)

// PrivilegeProber queries the invoking user's elevated-command grants.
// Implemented by probe.SudoProbe; tests inject fakes.
type PrivilegeProber interface {
	Query(ctx context.Context) (string, error)
}

// Scanner runs every check category against one filesystem snapshot.
type Scanner struct {
	// Provider yields filesystem facts for the scan root.
	Provider *fsfact.Provider

	// Rules is the static path rule set, loaded once before the scan.
	Rules policy.Ruleset

	// User is the invoking user's identity.
	User types.UserContext

	// Prober queries sudo grants. Nil disables the category.
	Prober PrivilegeProber

	// Only restricts the scan to a single category when non-empty.
	Only types.Category

	// Progress receives per-category progress lines; nil keeps the scan silent.
	Progress io.Writer
}

// Run executes all categories in their fixed order, emitting each category's
// verdicts to the sink as a complete unit so output grouping stays
// deterministic. Individual unreadable paths never fail the scan; Run only
// returns an error for a cancelled context.
func (s *Scanner) Run(ctx context.Context, sink output.Sink) error {
	for _, cat := range types.CategoryOrder {
		if s.Only != "" && cat != s.Only {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.progress(cat)

		var verdicts []types.Verdict
		switch cat {
		case types.CategoryTopLevelDir:
			verdicts = classify.TopLevelDirs(s.Provider.TopLevelDirs(), s.Rules)
		case types.CategoryWorldWritableDir:
			verdicts = classify.WorldWritableDirs(s.collect(worldWritableDir), s.Rules)
		case types.CategoryReachableExec:
			verdicts = classify.ReachableExecutables(s.collect(executableFile), s.Rules)
		case types.CategorySuid:
			verdicts = classify.Suid(s.collect(suidFile), s.Rules)
		case types.CategorySgid:
			verdicts = classify.Sgid(s.collect(sgidFile), s.Rules)
		case types.CategorySudoGrant:
			verdicts = s.sudoGrants(ctx)
		case types.CategoryRootOwnedWritable:
			verdicts = classify.RootOwnedWritable(s.collect(s.rootOwnedWritable), s.User)
		case types.CategoryRecommendation:
			verdicts = classify.Recommendations()
		}

		for _, v := range verdicts {
			sink.Emit(v)
		}
	}
	return nil
}

// collect runs one provider traversal and keeps the entries keep accepts.
func (s *Scanner) collect(keep func(types.FilesystemEntry) bool) []types.FilesystemEntry {
	var entries []types.FilesystemEntry
	// Walk errors only occur for an unreadable root; an empty candidate
	// set is the correct degradation either way.
	_ = s.Provider.Walk(func(e types.FilesystemEntry) bool {
		if keep(e) {
			entries = append(entries, e)
		}
		return true
	})
	return entries
}

// sudoGrants queries the privilege prober and classifies its output. A
// failed or unavailable query degrades to one informational verdict.
func (s *Scanner) sudoGrants(ctx context.Context) []types.Verdict {
	if s.Prober == nil {
		return []types.Verdict{classify.SudoUnavailable("probe disabled")}
	}
	out, err := s.Prober.Query(ctx)
	if err != nil {
		return []types.Verdict{classify.SudoUnavailable(err.Error())}
	}
	return classify.SudoGrants(out)
}

func (s *Scanner) progress(cat types.Category) {
	if s.Progress != nil {
		fmt.Fprintf(s.Progress, "\r  Scanning %-26s", string(cat)+"...")
	}
}

// Candidate filters, one per traversal-backed category.

func worldWritableDir(e types.FilesystemEntry) bool {
	return e.IsDir && e.IsWorldWritable()
}

func executableFile(e types.FilesystemEntry) bool {
	return e.IsRegular() && e.IsExecutable()
}

func suidFile(e types.FilesystemEntry) bool {
	return e.IsRegular() && e.HasSuid()
}

func sgidFile(e types.FilesystemEntry) bool {
	return e.IsRegular() && e.HasSgid()
}

func (s *Scanner) rootOwnedWritable(e types.FilesystemEntry) bool {
	return e.IsRegular() && e.UID == 0 && e.WritableBy(s.User)
}
