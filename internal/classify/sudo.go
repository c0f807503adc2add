package classify

import (
	"strings"

	"github.com/ancients-collective/privsift/internal/types"
)

// sudoRiskKeywords flag a grant line as a potential escalation vector.
// "nopasswd" means no credential is needed; "all" catches unrestricted
// run-as or command grants. The "all" match is a bare substring by intent:
// it over-flags lines like "(ALL) /usr/bin/less", which is the conservative
// behavior we want — an (ALL) run-as grant is itself worth an operator's
// attention.
var sudoRiskKeywords = []string{"nopasswd", "all"}

// SudoGrants classifies each non-empty line of `sudo -l` output.
func SudoGrants(output string) []types.Verdict {
	var verdicts []types.Verdict
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		verdicts = append(verdicts, classifySudoLine(line))
	}
	return verdicts
}

// SudoUnavailable is the single informational verdict emitted when the
// privilege-policy query could not run (sudo missing, credential cache
// empty in non-interactive mode, timeout).
func SudoUnavailable(reason string) types.Verdict {
	return types.Verdict{
		Category: types.CategorySudoGrant,
		Path:     "sudo -l",
		Detail:   "could not determine sudo grants (" + reason + ") — run `sudo -l` manually",
		Severity: types.SeverityInfo,
	}
}

func classifySudoLine(line string) types.Verdict {
	v := types.Verdict{
		Category: types.CategorySudoGrant,
		Path:     line,
		Severity: types.SeverityOK,
	}
	lower := strings.ToLower(line)
	for _, kw := range sudoRiskKeywords {
		if strings.Contains(lower, kw) {
			v.Severity = types.SeverityPotential
			v.Detail = "matches keyword " + strings.ToUpper(kw)
			break
		}
	}
	return v
}
