package output

import (
	"time"

	"github.com/ancients-collective/privsift/internal/types"
)

// newTestReport builds a report with one potential finding per filesystem
// category plus ok and info verdicts, for formatter tests.
func newTestReport() *types.ScanReport {
	return &types.ScanReport{
		Version:   "test",
		Timestamp: time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
		System: types.ScanSystem{
			Hostname:  "testhost",
			Kernel:    "6.8.0",
			Distro:    "ubuntu",
			Arch:      "amd64",
			Root:      "/",
			OneDevice: true,
			User:      types.UserContext{Username: "alice", UID: 1000, GID: 1000},
		},
		Summary: types.ScanSummary{
			Total:      5,
			Potential:  2,
			OK:         2,
			Info:       1,
			DurationMS: 1500,
		},
		Groups: []types.CategoryGroup{
			{
				Category: types.CategoryTopLevelDir,
				Verdicts: []types.Verdict{
					{Category: types.CategoryTopLevelDir, Path: "/secretstuff", Detail: "drwxr-xr-x root root 4096 2026-08-01 12:00 /secretstuff", Severity: types.SeverityPotential},
					{Category: types.CategoryTopLevelDir, Path: "/usr", Severity: types.SeverityOK},
				},
			},
			{
				Category: types.CategorySuid,
				Verdicts: []types.Verdict{
					{Category: types.CategorySuid, Path: "/usr/bin/passwd", Detail: "whitelisted", Severity: types.SeverityOK},
					{Category: types.CategorySuid, Path: "/tmp/rootshell", Detail: "-rwsr-xr-x root root 12345 2026-08-01 12:00 /tmp/rootshell", Severity: types.SeverityPotential},
				},
			},
			{
				Category: types.CategorySudoGrant,
				Verdicts: []types.Verdict{
					{Category: types.CategorySudoGrant, Path: "sudo -l", Detail: "could not determine sudo grants (probe disabled) — run `sudo -l` manually", Severity: types.SeverityInfo},
				},
			},
		},
	}
}

// newCleanReport builds a report with no potential findings.
func newCleanReport() *types.ScanReport {
	return &types.ScanReport{
		Version:   "test",
		Timestamp: time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
		System: types.ScanSystem{
			Hostname: "testhost",
			Arch:     "amd64",
			Root:     "/",
			User:     types.UserContext{Username: "alice", UID: 1000, GID: 1000},
		},
		Summary: types.ScanSummary{Total: 2, OK: 2, DurationMS: 900},
		Groups: []types.CategoryGroup{
			{
				Category: types.CategoryTopLevelDir,
				Verdicts: []types.Verdict{
					{Category: types.CategoryTopLevelDir, Path: "/usr", Severity: types.SeverityOK},
					{Category: types.CategoryTopLevelDir, Path: "/etc", Severity: types.SeverityOK},
				},
			},
		},
	}
}
