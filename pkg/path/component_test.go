package path

import (
	"testing"

	"github.com/phR0ze/fungus-sub000/pkg/errors"
	"github.com/phR0ze/fungus-sub000/pkg/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		comps []Component
	}{
		{"empty", "", nil},
		{"root", "/", []Component{Root()}},
		{"root collapsed", "///", []Component{Root()}},
		{"absolute", "/foo/bar", []Component{Root(), Segment("foo"), Segment("bar")}},
		{"relative", "foo/bar", []Component{Segment("foo"), Segment("bar")}},
		{"duplicate separators", "foo//bar///blah", []Component{Segment("foo"), Segment("bar"), Segment("blah")}},
		{"trailing separator", "foo/bar/", []Component{Segment("foo"), Segment("bar")}},
		{"dots", "./foo/../bar", []Component{CurrentDir(), Segment("foo"), ParentDir(), Segment("bar")}},
		{"rooted dots", "/../.", []Component{Root(), ParentDir(), CurrentDir()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in).Components()
			if tt.comps == nil {
				testutil.AssertEqual(t, 0, len(got))
				return
			}
			testutil.AssertEqual(t, tt.comps, got)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", "/"},
		{"//", "/"},
		{"/foo", "/foo"},
		{"/foo//bar/", "/foo/bar"},
		{"foo/bar", "foo/bar"},
		{"./foo/../bar", "./foo/../bar"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.want, Parse(tt.in).String(), "input %q", tt.in)
	}
}

func TestIsAbs(t *testing.T) {
	testutil.AssertTrue(t, Parse("/foo").IsAbs())
	testutil.AssertTrue(t, Parse("/").IsAbs())
	testutil.AssertFalse(t, Parse("foo").IsAbs())
	testutil.AssertFalse(t, Parse("./foo").IsAbs())
	testutil.AssertFalse(t, Parse("").IsAbs())
}

func TestFirstLast(t *testing.T) {
	first, err := First("foo/bar")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Segment("foo"), first)

	last, err := Last("foo/bar")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Segment("bar"), last)

	first, err = First("/foo")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Root(), first)

	_, err = First("")
	testutil.AssertTrue(t, errors.IsErrorCode(err, errors.ErrComponentNotFound))

	_, err = Last("")
	testutil.AssertTrue(t, errors.IsErrorCode(err, errors.ErrComponentNotFound))
}

func TestComponentString(t *testing.T) {
	testutil.AssertEqual(t, "/", Root().String())
	testutil.AssertEqual(t, ".", CurrentDir().String())
	testutil.AssertEqual(t, "..", ParentDir().String())
	testutil.AssertEqual(t, "foo", Segment("foo").String())
	testutil.AssertEqual(t, KindSegment, Segment("foo").Kind())
	testutil.AssertEqual(t, "foo", Segment("foo").Name())
	testutil.AssertEqual(t, "", Root().Name())
}

func TestMake(t *testing.T) {
	p := Make(Root(), Segment("foo"), Segment("bar"))
	testutil.AssertEqual(t, "/foo/bar", p.String())
	testutil.AssertEqual(t, 3, p.Len())
	testutil.AssertFalse(t, p.IsEmpty())
	testutil.AssertTrue(t, Make().IsEmpty())
}
