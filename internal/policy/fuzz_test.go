package policy

import (
	"strings"
	"testing"
)

// FuzzIsTrusted exercises the prefix matcher with arbitrary inputs to ensure
// it never panics and stays consistent with strings.HasPrefix.
func FuzzIsTrusted(f *testing.F) {
	f.Add("/usr/bin/vim", "/usr")
	f.Add("/usrX", "/usr")
	f.Add("", "/")
	f.Add("/tmp/\x00", "/tmp")
	f.Add("relative/path", "rel")

	f.Fuzz(func(t *testing.T, path, prefix string) {
		got := IsTrusted(path, []string{prefix})
		want := prefix != "" && strings.HasPrefix(path, prefix)
		if got != want {
			t.Fatalf("IsTrusted(%q, [%q]) = %v, want %v", path, prefix, got, want)
		}
		// Pure function: a second call must agree with the first.
		if again := IsTrusted(path, []string{prefix}); again != got {
			t.Fatalf("IsTrusted not referentially transparent for (%q, %q)", path, prefix)
		}
	})
}

// FuzzIsAllowed ensures the exact matcher is equivalent to string equality.
func FuzzIsAllowed(f *testing.F) {
	f.Add("/usr/bin/passwd", "/usr/bin/passwd")
	f.Add("/tmp/passwd", "/usr/bin/passwd")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, path, entry string) {
		got := IsAllowed(path, []string{entry})
		if got != (path == entry) {
			t.Fatalf("IsAllowed(%q, [%q]) = %v", path, entry, got)
		}
	})
}
