// Package context detects the invoking user's identity and host information
// for the report header.
package context

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strconv"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/ancients-collective/privsift/internal/types"
)

// DetectUser resolves the invoking user's identity and group memberships.
// Detection is layered:
//   - the user lookup must succeed (fatal — the root-owned-writable check
//     is meaningless without a UID)
//   - group enumeration failure degrades to the primary group only, with
//     a warning
//
// Returns the user context, non-fatal warnings, and an error only for the
// fatal layer.
func DetectUser() (types.UserContext, []string, error) {
	var warnings []string

	u, err := user.Current()
	if err != nil {
		return types.UserContext{}, nil, fmt.Errorf("cannot determine current user: %w", err)
	}

	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return types.UserContext{}, nil, fmt.Errorf("non-numeric uid %q: %w", u.Uid, err)
	}
	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return types.UserContext{}, nil, fmt.Errorf("non-numeric gid %q: %w", u.Gid, err)
	}

	ctx := types.UserContext{
		Username: u.Username,
		UID:      uint32(uid),
		GID:      uint32(gid),
	}

	groupIDs, err := u.GroupIds()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("group enumeration failed, using primary group only: %v", err))
		ctx.Groups = []uint32{ctx.GID}
		return ctx, warnings, nil
	}
	for _, g := range groupIDs {
		if n, err := strconv.ParseUint(g, 10, 32); err == nil {
			ctx.Groups = append(ctx.Groups, uint32(n))
		}
	}

	return ctx, warnings, nil
}

// DetectHost collects host identity for the report header. Every field is
// best-effort: detection failure leaves it empty rather than failing the scan.
func DetectHost(root string, oneDevice bool, u types.UserContext) types.ScanSystem {
	sys := types.ScanSystem{
		Arch:      runtime.GOARCH,
		Root:      root,
		OneDevice: oneDevice,
		User:      u,
	}

	if h, err := os.Hostname(); err == nil {
		sys.Hostname = h
	}

	if info, err := host.Info(); err == nil {
		sys.Kernel = info.KernelVersion
		sys.Distro = info.Platform
	}

	return sys
}
