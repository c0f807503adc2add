package output

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ancients-collective/privsift/internal/types"
)

// ReportFileName builds the persistence filename: the invoking user's name
// and the scan start time make it unique across runs.
func ReportFileName(username string, start time.Time) string {
	return fmt.Sprintf("privsift-%s-%s.txt", username, start.Format("20060102-150405"))
}

// SaveReport writes the report to path using the given formatter, with
// coloring disabled so the file mirrors the console content in plain text.
// An unwritable report file is the one hard failure of a scan: the operator
// explicitly asked for persistence.
func SaveReport(path string, report *types.ScanReport, formatter Formatter) error {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file %q: %w", path, err)
	}
	defer f.Close()

	if err := formatter.Write(f, report); err != nil {
		return fmt.Errorf("cannot write report file %q: %w", path, err)
	}
	return nil
}
