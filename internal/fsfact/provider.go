//go:build unix

// Package fsfact yields raw filesystem facts (path, mode, ownership, device)
// without judgment. It is the only package that touches the live filesystem
// during a scan; classifiers consume the immutable entries it produces.
package fsfact

import (
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"syscall"

	"github.com/ancients-collective/privsift/internal/types"
)

// modTimeLayout is the timestamp format used in long-format listings.
const modTimeLayout = "2006-01-02 15:04"

// Provider walks a filesystem tree and produces FilesystemEntry snapshots.
// Traversal is lexical within each directory (fs.WalkDir ordering), so two
// scans over an unchanged tree enumerate identically.
type Provider struct {
	// Root is the directory the walk starts from.
	Root string

	// OneDevice pins traversal to the device Root lives on; subtrees on
	// other devices (separate mounts) are skipped whole.
	OneDevice bool

	mu     sync.Mutex
	users  map[uint32]string
	groups map[uint32]string
}

// NewProvider returns a Provider rooted at root.
func NewProvider(root string, oneDevice bool) *Provider {
	return &Provider{
		Root:      root,
		OneDevice: oneDevice,
		users:     make(map[uint32]string),
		groups:    make(map[uint32]string),
	}
}

// Walk visits every reachable entry under Root and calls fn with its
// snapshot. Unreadable entries and subtrees are skipped silently: a
// reconnaissance scan that aborts on the first permission error defeats
// its purpose. fn returning false stops the walk early.
func (p *Provider) Walk(fn func(types.FilesystemEntry) bool) error {
	rootDev, haveRootDev := devOf(p.Root)

	return filepath.WalkDir(p.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Inaccessible path: skip and continue.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Vanished between listing and inspection (TOCTOU) or
			// permission denied on metadata: skip the single entry.
			return nil
		}

		entry := p.entryFromInfo(path, info)

		if p.OneDevice && haveRootDev && entry.Dev != rootDev {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !fn(entry) {
			return fs.SkipAll
		}
		return nil
	})
}

// TopLevelDirs returns the immediate children of Root that are directories,
// in lexical order. Entries whose metadata cannot be read are dropped.
func (p *Provider) TopLevelDirs() []types.FilesystemEntry {
	children, err := os.ReadDir(p.Root)
	if err != nil {
		return nil
	}

	var dirs []types.FilesystemEntry
	for _, c := range children {
		if !c.IsDir() {
			continue
		}
		info, err := c.Info()
		if err != nil {
			continue
		}
		dirs = append(dirs, p.entryFromInfo(filepath.Join(p.Root, c.Name()), info))
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Path < dirs[j].Path })
	return dirs
}

// Stat returns the snapshot for a single path, or ok=false when the path
// cannot be inspected.
func (p *Provider) Stat(path string) (types.FilesystemEntry, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return types.FilesystemEntry{}, false
	}
	return p.entryFromInfo(path, info), true
}

// entryFromInfo builds the immutable snapshot for one filesystem object.
func (p *Provider) entryFromInfo(path string, info os.FileInfo) types.FilesystemEntry {
	entry := types.FilesystemEntry{
		Path:    path,
		IsDir:   info.IsDir(),
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime().Format(modTimeLayout),
	}

	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		entry.UID = stat.Uid
		entry.GID = stat.Gid
		entry.Dev = uint64(stat.Dev)
	}

	entry.Owner = p.userName(entry.UID)
	entry.Group = p.groupName(entry.GID)
	return entry
}

// userName resolves a UID to a login name, caching lookups for the scan's
// lifetime. Falls back to the numeric ID when the name cannot be resolved.
func (p *Provider) userName(uid uint32) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name, ok := p.users[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}
	p.users[uid] = name
	return name
}

// groupName resolves a GID to a group name with the same caching discipline.
func (p *Provider) groupName(gid uint32) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name, ok := p.groups[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}
	p.groups[gid] = name
	return name
}

// devOf returns the device ID of path, or ok=false when it cannot be read.
func devOf(path string) (uint64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(stat.Dev), true
}
