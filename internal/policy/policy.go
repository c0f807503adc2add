// Package policy decides membership of paths in configured trusted-root and
// known-safe sets. All functions are pure: the decision depends only on the
// rule set and the path string, never on traversal order or filesystem state,
// so they are safe to call concurrently without synchronization.
package policy

import "strings"

// IsTrusted reports whether path starts with any of the configured prefixes.
//
// The match is a raw byte-prefix test, not a path-segment-aware comparison:
// "/usrX/bin/x" matches the prefix "/usr". This imprecision is preserved
// deliberately for compatibility with the historical rule lists; do not
// "fix" it to a boundary-aware match without revisiting every default
// prefix. Pinned by TestIsTrusted_PrefixIsNotSegmentAware.
func IsTrusted(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// IsAllowed reports whether path equals an allowlist entry verbatim.
// A whitelisted binary copied to any other absolute path does not match.
func IsAllowed(path string, allow []string) bool {
	for _, a := range allow {
		if path == a {
			return true
		}
	}
	return false
}

// Ruleset holds every static path rule a scan uses. Rule sets are loaded
// once at start and never mutated during a scan.
type Ruleset struct {
	// StandardTopLevel is the reference set of conventional top-level
	// directory names; anything else at the root is a potential finding.
	StandardTopLevel []string `yaml:"standard_top_level" validate:"required,min=1"`

	// TrustedPrefixes are path prefixes considered part of the base system
	// and excluded from reachable-executable scanning.
	TrustedPrefixes []string `yaml:"trusted_prefixes" validate:"required,min=1,dive,startswith=/"`

	// TempDirs are the world-writable shared temp directories that classify
	// as expected even without further carve-outs.
	TempDirs []string `yaml:"temp_dirs" validate:"required,min=1,dive,startswith=/"`

	// SuidAllow is the exact-path whitelist of conventional setuid binaries.
	SuidAllow []string `yaml:"suid_allow" validate:"omitempty,dive,startswith=/"`

	// SgidAllow is the exact-path whitelist of conventional setgid binaries.
	SgidAllow []string `yaml:"sgid_allow" validate:"omitempty,dive,startswith=/"`
}

// IsStandardTopLevel reports whether name is in the standard top-level set.
func (r Ruleset) IsStandardTopLevel(name string) bool {
	for _, s := range r.StandardTopLevel {
		if name == s {
			return true
		}
	}
	return false
}

// IsTempDir reports whether path is one of the configured temp directories.
func (r Ruleset) IsTempDir(path string) bool {
	return IsAllowed(path, r.TempDirs)
}
