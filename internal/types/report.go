package types

import "time"

// ScanReport is the top-level structure for a complete scan report.
// It is serialized directly to JSON for the --format=json output.
type ScanReport struct {
	// Version is the privsift version that produced this report.
	Version string `json:"version"`

	// Timestamp is when the scan started.
	Timestamp time.Time `json:"timestamp"`

	// System describes the scanned host and the invoking user.
	System ScanSystem `json:"system"`

	// Summary provides aggregate statistics.
	Summary ScanSummary `json:"summary"`

	// Groups holds the verdicts of each category in emission order.
	Groups []CategoryGroup `json:"groups"`
}

// CategoryGroup is the ordered set of verdicts one category produced.
type CategoryGroup struct {
	// Category is the check that produced this group.
	Category Category `json:"category"`

	// Verdicts are the classification outcomes in traversal order.
	Verdicts []Verdict `json:"verdicts"`
}

// ScanSystem describes the host and user context of a scan.
type ScanSystem struct {
	// Hostname is the system hostname.
	Hostname string `json:"hostname"`

	// Kernel is the kernel version string.
	Kernel string `json:"kernel,omitempty"`

	// Distro is the Linux distribution ID, if detectable.
	Distro string `json:"distro,omitempty"`

	// Arch is the CPU architecture.
	Arch string `json:"arch"`

	// Root is the filesystem root that was scanned.
	Root string `json:"root"`

	// OneDevice reports whether traversal was pinned to the root's device.
	OneDevice bool `json:"one_device"`

	// User is the invoking user's identity.
	User UserContext `json:"user"`
}

// ScanSummary provides aggregate statistics for a scan.
type ScanSummary struct {
	// Total is the number of verdicts emitted across all categories.
	Total int `json:"total"`

	// Potential is the number of potential-risk verdicts.
	Potential int `json:"potential"`

	// OK is the number of expected/benign verdicts.
	OK int `json:"ok"`

	// Info is the number of informational verdicts.
	Info int `json:"info"`

	// DurationMS is the total scan duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// UserContext is the invoking user's identity, captured once at scan start.
// Group membership feeds the root-owned-writable classifier.
type UserContext struct {
	// Username is the invoking user's login name.
	Username string `json:"username"`

	// UID is the numeric user ID.
	UID uint32 `json:"uid"`

	// GID is the numeric primary group ID.
	GID uint32 `json:"gid"`

	// Groups are the supplementary group IDs, including the primary group.
	Groups []uint32 `json:"groups,omitempty"`
}

// InGroup reports whether gid is among the user's groups (primary included).
func (u UserContext) InGroup(gid uint32) bool {
	if gid == u.GID {
		return true
	}
	for _, g := range u.Groups {
		if g == gid {
			return true
		}
	}
	return false
}
