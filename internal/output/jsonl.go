package output

import (
	"encoding/json"
	"io"

	"github.com/ancients-collective/privsift/internal/types"
)

// JSONLFormatter writes a scan as newline-delimited JSON (one object per
// line). The first line is a header with system and summary information;
// subsequent lines are individual verdicts.
type JSONLFormatter struct{}

// Write renders the scan as JSONL: header line + one line per verdict.
func (f *JSONLFormatter) Write(w io.Writer, report *types.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	header := struct {
		Type      string            `json:"type"`
		Version   string            `json:"version"`
		Timestamp string            `json:"timestamp"`
		System    types.ScanSystem  `json:"system"`
		Summary   types.ScanSummary `json:"summary"`
	}{
		Type:      "header",
		Version:   report.Version,
		Timestamp: report.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		System:    report.System,
		Summary:   report.Summary,
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	for _, g := range report.Groups {
		for _, v := range g.Verdicts {
			line := struct {
				Type    string        `json:"type"`
				Verdict types.Verdict `json:"verdict"`
			}{
				Type:    "verdict",
				Verdict: v,
			}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
	}

	return nil
}
