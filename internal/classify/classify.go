// Package classify contains the verdict engine: one classifier per check
// category, each pairing a filesystem query with the policy that decides
// whether a finding is a potential risk or expected. Classifiers are pure
// functions over FilesystemEntry snapshots — every entry examined yields
// exactly one verdict, so a report is a complete partition of the scanned
// entries, never a sampled subset.
package classify

import (
	"fmt"
	"path/filepath"

	"github.com/ancients-collective/privsift/internal/fsfact"
	"github.com/ancients-collective/privsift/internal/policy"
	"github.com/ancients-collective/privsift/internal/types"
)

// TopLevelDirs classifies the immediate child directories of the scan root.
// Names outside the configured standard layout are potential; the rest ok.
func TopLevelDirs(dirs []types.FilesystemEntry, rules policy.Ruleset) []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(dirs))
	for _, d := range dirs {
		v := types.Verdict{
			Category: types.CategoryTopLevelDir,
			Path:     d.Path,
			Detail:   fsfact.LongList(d),
		}
		if rules.IsStandardTopLevel(filepath.Base(d.Path)) {
			v.Severity = types.SeverityOK
			v.Detail = ""
		} else {
			v.Severity = types.SeverityPotential
		}
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// WorldWritableDirs classifies directories whose "others" write bit is set.
//
// Sticky-bit directories are excluded from the candidate pool entirely:
// a sticky world-writable directory is the standard shared-temp pattern and
// flagging it would make every system report its own /tmp. Among the
// remainder, the configured temp paths classify ok and everything else is
// potential. Callers must pass only world-writable directories.
func WorldWritableDirs(dirs []types.FilesystemEntry, rules policy.Ruleset) []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(dirs))
	for _, d := range dirs {
		v := types.Verdict{
			Category: types.CategoryWorldWritableDir,
			Path:     d.Path,
		}
		switch {
		case d.HasSticky():
			v.Severity = types.SeverityOK
			v.Detail = "sticky bit set"
		case rules.IsTempDir(d.Path):
			v.Severity = types.SeverityOK
			v.Detail = "shared temp directory"
		default:
			v.Severity = types.SeverityPotential
			v.Detail = fsfact.LongList(d)
		}
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// ReachableExecutables classifies regular files with any execute bit set.
//
// Files under a trusted prefix are expected system content. Among the rest,
// root:root ownership is treated as package-manager noise; only files some
// other actor owns indicate an executable placed outside the base system.
func ReachableExecutables(files []types.FilesystemEntry, rules policy.Ruleset) []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(files))
	for _, f := range files {
		v := types.Verdict{
			Category: types.CategoryReachableExec,
			Path:     f.Path,
		}
		switch {
		case policy.IsTrusted(f.Path, rules.TrustedPrefixes):
			v.Severity = types.SeverityOK
			v.Detail = "under trusted prefix"
		case f.UID == 0 && f.GID == 0:
			v.Severity = types.SeverityOK
			v.Detail = "owned root:root"
		default:
			v.Severity = types.SeverityPotential
			v.Detail = fsfact.LongList(f)
		}
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// Suid classifies setuid regular files against the exact-path whitelist.
func Suid(files []types.FilesystemEntry, rules policy.Ruleset) []types.Verdict {
	return classifyByAllow(files, types.CategorySuid, rules.SuidAllow)
}

// Sgid classifies setgid regular files against its own exact-path whitelist.
// SUID and SGID scans are independent: a file may appear in both.
func Sgid(files []types.FilesystemEntry, rules policy.Ruleset) []types.Verdict {
	return classifyByAllow(files, types.CategorySgid, rules.SgidAllow)
}

// classifyByAllow marks exact whitelist matches ok and everything else
// potential. Matching is by full path only — a whitelisted binary copied
// to another location does not match.
func classifyByAllow(files []types.FilesystemEntry, cat types.Category, allow []string) []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(files))
	for _, f := range files {
		v := types.Verdict{
			Category: cat,
			Path:     f.Path,
		}
		if policy.IsAllowed(f.Path, allow) {
			v.Severity = types.SeverityOK
			v.Detail = "whitelisted"
		} else {
			v.Severity = types.SeverityPotential
			v.Detail = fsfact.LongList(f)
		}
		verdicts = append(verdicts, v)
	}
	return verdicts
}

// RootOwnedWritable classifies root-owned regular files the invoking user
// can write to. Every such file is unconditionally potential: content a
// non-root actor can change while root trusts or executes it has no benign
// variant worth whitelisting.
func RootOwnedWritable(files []types.FilesystemEntry, u types.UserContext) []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(files))
	for _, f := range files {
		verdicts = append(verdicts, types.Verdict{
			Category: types.CategoryRootOwnedWritable,
			Path:     f.Path,
			Detail:   fmt.Sprintf("writable by %s: %s", u.Username, fsfact.LongList(f)),
			Severity: types.SeverityPotential,
		})
	}
	return verdicts
}
