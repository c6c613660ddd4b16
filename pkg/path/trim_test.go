package path

import (
	"testing"

	"github.com/phR0ze/fungus-sub000/pkg/testutil"
)

func TestMash(t *testing.T) {
	tests := []struct {
		want string
		dir  string
		base string
	}{
		// absolute base loses its root marker
		{"/foo/bar", "/foo", "/bar"},
		{"/foo/bar", "/foo/", "/bar"},
		// no doubled or trailing separators survive
		{"/foo/bar", "/foo/", "bar/"},
		{"/foo/bar", "/foo", "bar//"},
		// inner current dirs add nothing
		{"/foo/bar", "/foo/.", "bar"},
		{"/foo/bar", "/foo", "./bar"},
		{"./foo/bar", "./foo", "bar"},
		// parent refs are kept, never cancelled
		{"/foo/../bar", "/foo", "../bar"},
		{"foo/../bar", "foo", "../bar"},
		// degenerate inputs
		{"foo", "", "foo"},
		{"foo", "foo", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, Mash(tt.dir, tt.base), "dir %q base %q", tt.dir, tt.base)
	}
}

func TestTrimFirst(t *testing.T) {
	tests := []struct {
		want string
		in   string
	}{
		// absolute
		{"", "/"},
		{"foo", "/foo"},
		{"foo/bar", "/foo/bar"},
		// relative
		{"", "foo"},
		{"bar", "foo/bar"},
		{"", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, TrimFirst(tt.in), "input %q", tt.in)
	}
}

func TestTrimLast(t *testing.T) {
	tests := []struct {
		want string
		in   string
	}{
		// absolute
		{"", "/"},
		{"/", "/foo"},
		{"/foo", "/foo/bar"},
		// relative
		{"", "foo"},
		{"foo", "foo/bar"},
		{"", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, TrimLast(tt.in), "input %q", tt.in)
	}
}

func TestTrimPrefix(t *testing.T) {
	testutil.AssertEqual(t, "/bar", TrimPrefix("/foo/bar", "/foo"))
	testutil.AssertEqual(t, "/foo/bar", TrimPrefix("/foo/bar", "bar"))
	testutil.AssertEqual(t, "/foo/bar", TrimPrefix("/foo/bar", ""))
}

func TestTrimSuffix(t *testing.T) {
	testutil.AssertEqual(t, "/foo", TrimSuffix("/foo/bar", "/bar"))
	testutil.AssertEqual(t, "/foo/bar", TrimSuffix("/foo/bar", "foo"))
	testutil.AssertEqual(t, "/foo/bar", TrimSuffix("/foo/bar", ""))
}

func TestTrimExt(t *testing.T) {
	tests := []struct {
		want string
		in   string
	}{
		{"/foo/bar", "/foo/bar.txt"},
		{"/foo/bar.tar", "/foo/bar.tar.gz"},
		// hidden files have no extension
		{".bashrc", ".bashrc"},
		{"/foo/.bashrc", "/foo/.bashrc"},
		// no extension at all
		{"/foo/bar", "/foo/bar"},
		{"/", "/"},
		{"", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, TrimExt(tt.in), "input %q", tt.in)
	}
}

func TestTrimProtocol(t *testing.T) {
	tests := []struct {
		want string
		in   string
	}{
		// known schemes
		{"/foo", "file:///foo"},
		{"foo", "ftp://foo"},
		{"foo", "http://foo"},
		{"foo", "https://foo"},
		// case-insensitive
		{"Foo", "HTTPS://Foo"},
		{"foo", "File://foo"},
		// unknown schemes are left alone
		{"ntp:://foo", "ntp:://foo"},
		{"smb://foo", "smb://foo"},
		// doubled separators are not a protocol
		{"foo//bar", "foo//bar"},
		{"/foo//bar", "/foo//bar"},
		// no marker at all
		{"foo", "foo"},
		{"", ""},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, TrimProtocol(tt.in), "input %q", tt.in)
	}
}
