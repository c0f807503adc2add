//go:build unix

package fsfact

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/privsift/internal/types"
)

// newTestTree builds a small synthetic root:
//
//	root/
//	  bin/
//	    tool        (0755)
//	  etc/
//	    conf        (0644)
//	  secretstuff/
func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, d := range []string{"bin", "etc", "secretstuff"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "tool"), []byte("#!/bin/sh\n"), 0o644))
	require.NoError(t, os.Chmod(filepath.Join(root, "bin", "tool"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "etc", "conf"), []byte("x=1\n"), 0o644))
	require.NoError(t, os.Chmod(filepath.Join(root, "etc", "conf"), 0o644))

	return root
}

func TestWalk_EnumeratesLexically(t *testing.T) {
	root := newTestTree(t)
	p := NewProvider(root, false)

	var paths []string
	err := p.Walk(func(e types.FilesystemEntry) bool {
		paths = append(paths, e.Path)
		return true
	})
	require.NoError(t, err)

	want := []string{
		root,
		filepath.Join(root, "bin"),
		filepath.Join(root, "bin", "tool"),
		filepath.Join(root, "etc"),
		filepath.Join(root, "etc", "conf"),
		filepath.Join(root, "secretstuff"),
	}
	assert.Equal(t, want, paths)
}

func TestWalk_EntrySnapshot(t *testing.T) {
	root := newTestTree(t)
	p := NewProvider(root, false)

	var tool types.FilesystemEntry
	require.NoError(t, p.Walk(func(e types.FilesystemEntry) bool {
		if filepath.Base(e.Path) == "tool" {
			tool = e
		}
		return true
	}))

	require.NotEmpty(t, tool.Path)
	assert.False(t, tool.IsDir)
	assert.True(t, tool.IsRegular())
	assert.True(t, tool.IsExecutable())
	assert.False(t, tool.IsWorldWritable())
	assert.Equal(t, fs.FileMode(0o755), tool.Mode.Perm())
	assert.NotZero(t, tool.Dev)
	assert.NotEmpty(t, tool.Owner)
	assert.NotEmpty(t, tool.ModTime)
}

func TestWalk_EarlyStop(t *testing.T) {
	root := newTestTree(t)
	p := NewProvider(root, false)

	count := 0
	require.NoError(t, p.Walk(func(e types.FilesystemEntry) bool {
		count++
		return count < 2
	}))

	assert.Equal(t, 2, count)
}

func TestWalk_SkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not restrict root")
	}

	root := newTestTree(t)
	locked := filepath.Join(root, "etc")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	p := NewProvider(root, false)
	var paths []string
	err := p.Walk(func(e types.FilesystemEntry) bool {
		paths = append(paths, e.Path)
		return true
	})

	// The scan continues past the unreadable subtree without error.
	require.NoError(t, err)
	assert.Contains(t, paths, filepath.Join(root, "secretstuff"))
	assert.NotContains(t, paths, filepath.Join(root, "etc", "conf"))
}

func TestTopLevelDirs(t *testing.T) {
	root := newTestTree(t)
	p := NewProvider(root, false)

	dirs := p.TopLevelDirs()

	require.Len(t, dirs, 3)
	assert.Equal(t, filepath.Join(root, "bin"), dirs[0].Path)
	assert.Equal(t, filepath.Join(root, "secretstuff"), dirs[2].Path)
	for _, d := range dirs {
		assert.True(t, d.IsDir)
	}
}

func TestTopLevelDirs_UnreadableRoot(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "missing"), false)
	assert.Nil(t, p.TopLevelDirs())
}

func TestStat(t *testing.T) {
	root := newTestTree(t)
	p := NewProvider(root, false)

	e, ok := p.Stat(filepath.Join(root, "bin", "tool"))
	require.True(t, ok)
	assert.True(t, e.IsExecutable())

	_, ok = p.Stat(filepath.Join(root, "nope"))
	assert.False(t, ok)
}

func TestWalk_Idempotent(t *testing.T) {
	root := newTestTree(t)
	p := NewProvider(root, false)

	collect := func() []types.FilesystemEntry {
		var entries []types.FilesystemEntry
		require.NoError(t, p.Walk(func(e types.FilesystemEntry) bool {
			entries = append(entries, e)
			return true
		}))
		return entries
	}

	assert.Equal(t, collect(), collect())
}

func TestLongList_Format(t *testing.T) {
	e := types.FilesystemEntry{
		Path:    "/usr/bin/passwd",
		Mode:    fs.ModeSetuid | 0o755,
		Owner:   "root",
		Group:   "root",
		Size:    55528,
		ModTime: "2025-11-02 09:14",
	}

	line := LongList(e)

	assert.Contains(t, line, "urwxr-xr-x")
	assert.Contains(t, line, "root root")
	assert.Contains(t, line, "55528")
	assert.Contains(t, line, "/usr/bin/passwd")
}
