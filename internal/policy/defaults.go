package policy

// DefaultRuleset returns the built-in path rules. Each list can be replaced
// via a --rules YAML file; these defaults cover a conventional Linux layout.
func DefaultRuleset() Ruleset {
	return Ruleset{
		StandardTopLevel: []string{
			"bin", "boot", "cdrom", "dev", "etc", "home",
			"lib", "lib32", "lib64", "libx32", "lost+found",
			"media", "mnt", "opt", "proc", "root", "run",
			"sbin", "snap", "srv", "sys", "tmp", "usr", "var",
		},
		TrustedPrefixes: []string{
			"/bin", "/sbin", "/usr", "/etc",
			"/lib", "/lib32", "/lib64", "/libx32",
			"/boot", "/proc", "/sys", "/dev", "/run",
			"/snap", "/var/lib", "/var/cache",
		},
		TempDirs: []string{"/tmp", "/var/tmp"},
		SuidAllow: []string{
			"/bin/mount",
			"/bin/ping",
			"/bin/su",
			"/bin/umount",
			"/usr/bin/chfn",
			"/usr/bin/chsh",
			"/usr/bin/fusermount",
			"/usr/bin/fusermount3",
			"/usr/bin/gpasswd",
			"/usr/bin/mount",
			"/usr/bin/newgrp",
			"/usr/bin/passwd",
			"/usr/bin/ping",
			"/usr/bin/pkexec",
			"/usr/bin/su",
			"/usr/bin/sudo",
			"/usr/bin/umount",
			"/usr/lib/dbus-1.0/dbus-daemon-launch-helper",
			"/usr/lib/openssh/ssh-keysign",
			"/usr/lib/policykit-1/polkit-agent-helper-1",
			"/usr/lib/polkit-1/polkit-agent-helper-1",
		},
		SgidAllow: []string{
			"/usr/bin/at",
			"/usr/bin/bsd-write",
			"/usr/bin/chage",
			"/usr/bin/crontab",
			"/usr/bin/expiry",
			"/usr/bin/locate",
			"/usr/bin/mlocate",
			"/usr/bin/plocate",
			"/usr/bin/ssh-agent",
			"/usr/bin/wall",
			"/usr/bin/write",
			"/usr/lib/utempter/utempter",
			"/usr/sbin/unix_chkpwd",
		},
	}
}
