// Package types defines shared type definitions used across all privsift packages.
package types

// Severity classifies how a scanned artifact should be treated.
type Severity string

const (
	// SeverityPotential means the artifact is a potential privilege-escalation vector.
	SeverityPotential Severity = "potential"
	// SeverityOK means the artifact matched a risky pattern but is expected/benign.
	SeverityOK Severity = "ok"
	// SeverityInfo means an advisory note, not tied to a specific artifact.
	SeverityInfo Severity = "info"
)

// Category identifies which check produced a verdict.
type Category string

const (
	CategoryTopLevelDir       Category = "top-level-dir"
	CategoryWorldWritableDir  Category = "world-writable-dir"
	CategoryReachableExec     Category = "reachable-executable"
	CategorySuid              Category = "suid"
	CategorySgid              Category = "sgid"
	CategorySudoGrant         Category = "sudo-grant"
	CategoryRootOwnedWritable Category = "root-owned-writable"
	CategoryRecommendation    Category = "recommendation"
)

// CategoryOrder is the fixed emission order for a scan. Report output is
// grouped by category in exactly this order.
var CategoryOrder = []Category{
	CategoryTopLevelDir,
	CategoryWorldWritableDir,
	CategoryReachableExec,
	CategorySuid,
	CategorySgid,
	CategorySudoGrant,
	CategoryRootOwnedWritable,
	CategoryRecommendation,
}

// CategoryNames returns the category identifiers as plain strings,
// in emission order.
func CategoryNames() []string {
	names := make([]string, 0, len(CategoryOrder))
	for _, c := range CategoryOrder {
		names = append(names, string(c))
	}
	return names
}

// Verdict is the outcome of classifying a single scanned artifact.
// Every entry a classifier examines yields exactly one Verdict.
type Verdict struct {
	// Category is the check that produced this verdict.
	Category Category `json:"category"`

	// Path is the filesystem path or grant line the verdict refers to.
	Path string `json:"path"`

	// Detail is a human-readable justification, typically a long-format
	// directory listing for filesystem findings.
	Detail string `json:"detail,omitempty"`

	// Severity is the classification outcome.
	Severity Severity `json:"severity"`
}
