package path

import (
	"testing"

	"github.com/phR0ze/fungus-sub000/pkg/testutil"
)

func TestClean(t *testing.T) {
	tests := []struct {
		want string
		in   string
	}{
		// Root
		{"/", "/"},
		// Remove trailing slashes
		{"/", "//"},
		{"/", "///"},
		{".", ".//"},
		// Remove duplicates and handle rooted parent ref
		{"/", "//.."},
		{"..", "..//"},
		{"/", "/..//"},
		{"foo/bar/blah", "foo//bar///blah"},
		{"/foo/bar/blah", "/foo//bar///blah"},
		// Unneeded current dirs and duplicates
		{"/", "/.//./"},
		{".", "././/./"},
		{".", "./"},
		{"/", "/./"},
		{"foo", "./foo"},
		{"foo/bar", "./foo/./bar"},
		{"/foo/bar", "/foo/./bar"},
		{"foo/bar", "foo/bar/."},
		// Handle parent references
		{"/", "/.."},
		{"/foo", "/../foo"},
		{".", "foo/.."},
		{"../foo", "../foo"},
		{"/bar", "/foo/../bar"},
		{"foo", "foo/bar/.."},
		{"bar", "foo/../bar"},
		{".", "foo/bar/../../"},
		{"..", "foo/bar/../../.."},
		{"/", "/foo/bar/../../.."},
		{"/", "/foo/bar/../../../.."},
		{"../..", "foo/bar/../../../.."},
		{"blah/bar", "foo/bar/../../blah/bar"},
		{"blah", "foo/bar/../../blah/bar/.."},
		{"../foo", "../foo/"},
		{"../foo/bar", "../foo/bar"},
		{"..", "../foo/.."},
		{"~/foo", "~/foo"},
		// Empty input renders as the current directory
		{".", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, Clean(tt.in), "input %q", tt.in)
	}
}

// Clean must be idempotent: cleaning a cleaned path changes nothing.
func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"", "/", "//..", ".//", "foo//bar///blah", "/foo/./bar",
		"foo/bar/../../..", "../foo/../../..", "/foo/bar/../../../..",
		"./foo/./bar/", "~/foo/bar/../.",
	}

	for _, in := range inputs {
		once := Clean(in)
		testutil.AssertEqual(t, once, Clean(once), "input %q", in)
	}
}
