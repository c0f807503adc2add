// Package probe queries the invoking user's privilege-elevation policy by
// running the system sudo binary. The invocation is the external collaborator
// boundary; classifying its output lives in the classify package.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout bounds the sudo query. sudo -n never prompts, but a
// misbehaving PAM stack can still hang; the scan must not stall on it.
const DefaultTimeout = 5 * time.Second

// SudoProbe runs `sudo -n -l` non-interactively.
type SudoProbe struct {
	// Path is the resolved sudo binary path.
	Path string

	// Timeout is the maximum execution time for the query.
	Timeout time.Duration
}

// NewSudoProbe resolves the sudo binary via exec.LookPath with a hardcoded
// fallback for systems where it is not in PATH.
func NewSudoProbe() *SudoProbe {
	path := "/usr/bin/sudo"
	if p, err := exec.LookPath("sudo"); err == nil {
		path = p
	}
	return &SudoProbe{Path: path, Timeout: DefaultTimeout}
}

// Query returns the sudo -l output for the current user. The -n flag makes
// sudo fail instead of prompting, so a missing credential cache degrades to
// an error the caller turns into an informational verdict. stdin is left
// nil (no controlling input), output and exit status are captured, and the
// scan proceeds regardless of outcome.
func (p *SudoProbe) Query(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Path, "-n", "-l")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("sudo query timed out after %v", p.Timeout)
	}
	if err != nil {
		// sudo -n exits non-zero when a password would be required.
		msg := firstLine(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("sudo query failed: %s", msg)
	}
	return stdout.String(), nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
