package classify

import "github.com/ancients-collective/privsift/internal/types"

// recommendations are the static advisory checks the scan cannot automate.
// Emitted as the final category of every report.
var recommendations = []string{
	"review cron jobs and systemd timers for scripts in user-writable locations",
	"check PATH entries of privileged accounts for writable or relative directories",
	"compare the running kernel version against known local privilege escalation CVEs",
	"audit file capabilities: getcap -r / 2>/dev/null",
	"search shell history and dotfiles for leaked credentials",
	"inspect NFS exports for no_root_squash",
}

// Recommendations returns the fixed advisory list as informational verdicts.
func Recommendations() []types.Verdict {
	verdicts := make([]types.Verdict, 0, len(recommendations))
	for _, r := range recommendations {
		verdicts = append(verdicts, types.Verdict{
			Category: types.CategoryRecommendation,
			Path:     r,
			Severity: types.SeverityInfo,
		})
	}
	return verdicts
}
