//go:build unix

package fsfact

import (
	"fmt"

	"github.com/ancients-collective/privsift/internal/types"
)

// LongList renders an ls -l style line for an entry, used as the verdict
// detail for operator inspection. The mode column uses Go's FileMode string,
// so setuid renders as a leading "u" rather than an embedded "s":
//
//	urwxr-xr-x root root 55528 2025-11-02 09:14 /usr/bin/passwd
func LongList(e types.FilesystemEntry) string {
	return fmt.Sprintf("%s %s %s %d %s %s",
		e.Mode.String(), e.Owner, e.Group, e.Size, e.ModTime, e.Path)
}
