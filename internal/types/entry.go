package types

import "io/fs"

// FilesystemEntry is an immutable snapshot of one filesystem object taken at
// scan time. Classifiers operate only on these values, never on the live
// filesystem, which keeps them pure and trivially testable.
type FilesystemEntry struct {
	// Path is the absolute path of the entry.
	Path string `json:"path"`

	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir"`

	// Mode holds the full POSIX mode including setuid/setgid/sticky bits.
	Mode fs.FileMode `json:"mode"`

	// UID and GID are the numeric owner and group IDs.
	UID uint32 `json:"uid"`
	GID uint32 `json:"gid"`

	// Owner and Group are the resolved names, or the numeric ID as a string
	// when the name cannot be resolved.
	Owner string `json:"owner"`
	Group string `json:"group"`

	// Dev identifies the device the entry lives on, for one-device scans.
	Dev uint64 `json:"dev"`

	// Size is the entry size in bytes, carried for long-format listings.
	Size int64 `json:"size"`

	// ModTime is the modification time formatted for long-format listings.
	ModTime string `json:"mod_time,omitempty"`
}

// IsRegular reports whether the entry is a regular file.
func (e FilesystemEntry) IsRegular() bool {
	return e.Mode.IsRegular()
}

// IsExecutable reports whether any execute bit is set.
func (e FilesystemEntry) IsExecutable() bool {
	return e.Mode.Perm()&0o111 != 0
}

// IsWorldWritable reports whether the "others" write bit is set.
func (e FilesystemEntry) IsWorldWritable() bool {
	return e.Mode.Perm()&0o002 != 0
}

// HasSticky reports whether the sticky bit is set.
func (e FilesystemEntry) HasSticky() bool {
	return e.Mode&fs.ModeSticky != 0
}

// HasSuid reports whether the setuid bit is set.
func (e FilesystemEntry) HasSuid() bool {
	return e.Mode&fs.ModeSetuid != 0
}

// HasSgid reports whether the setgid bit is set.
func (e FilesystemEntry) HasSgid() bool {
	return e.Mode&fs.ModeSetgid != 0
}

// WritableBy reports whether the given user may write to the entry under
// POSIX access-class precedence: exactly one class applies — owner when the
// UID matches, else group when the user is in the entry's group (primary or
// supplementary), else other — and only that class's write bit counts, the
// way access(2) evaluates it. A group member is denied by a clear group
// write bit even when the others bit is set.
func (e FilesystemEntry) WritableBy(u UserContext) bool {
	perm := e.Mode.Perm()
	switch {
	case u.UID == e.UID:
		return perm&0o200 != 0
	case u.InGroup(e.GID):
		return perm&0o020 != 0
	default:
		return perm&0o002 != 0
	}
}
