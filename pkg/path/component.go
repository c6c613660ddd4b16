package path

import (
	"strings"

	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// Separator is the path separator. Fungus targets Unix-style paths.
const Separator = "/"

// Kind identifies the role a component plays within a path.
type Kind int

const (
	// KindRoot is the leading separator of an absolute path
	KindRoot Kind = iota

	// KindCurrentDir is the "." component
	KindCurrentDir

	// KindParentDir is the ".." component
	KindParentDir

	// KindSegment is a named, separator-free component
	KindSegment
)

// Component is one atomic unit of a path. Components are immutable
// values; a Root component may only appear at position 0.
type Component struct {
	kind Kind
	name string
}

// Root returns the root marker component
func Root() Component { return Component{kind: KindRoot} }

// CurrentDir returns the "." component
func CurrentDir() Component { return Component{kind: KindCurrentDir} }

// ParentDir returns the ".." component
func ParentDir() Component { return Component{kind: KindParentDir} }

// Segment returns a named component
func Segment(name string) Component { return Component{kind: KindSegment, name: name} }

// Kind returns the component's kind
func (c Component) Kind() Kind { return c.kind }

// Name returns the segment name, or "" for non-segment components
func (c Component) Name() string { return c.name }

// String renders the component in its native form
func (c Component) String() string {
	switch c.kind {
	case KindRoot:
		return Separator
	case KindCurrentDir:
		return "."
	case KindParentDir:
		return ".."
	default:
		return c.name
	}
}

// Path is an ordered, immutable sequence of components. The zero value
// is the empty path.
type Path struct {
	comps []Component
}

// Make builds a path from the given components
func Make(comps ...Component) Path {
	return Path{comps: append([]Component(nil), comps...)}
}

// Parse splits a native path string into its component sequence.
// Consecutive separators collapse into a single boundary and produce no
// empty segments.
func Parse(s string) Path {
	var comps []Component
	rest := s
	if strings.HasPrefix(rest, Separator) {
		comps = append(comps, Root())
		rest = strings.TrimLeft(rest, Separator)
	}
	for _, part := range strings.Split(rest, Separator) {
		switch part {
		case "":
			// collapsed or trailing separator
		case ".":
			comps = append(comps, CurrentDir())
		case "..":
			comps = append(comps, ParentDir())
		default:
			comps = append(comps, Segment(part))
		}
	}
	return Path{comps: comps}
}

// String joins the components with single separators. A leading root
// renders as the separator alone and an empty path renders as "".
func (p Path) String() string {
	if len(p.comps) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range p.comps {
		if i > 0 && p.comps[i-1].kind != KindRoot {
			b.WriteString(Separator)
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Components returns a copy of the component sequence
func (p Path) Components() []Component {
	return append([]Component(nil), p.comps...)
}

// Len returns the number of components
func (p Path) Len() int { return len(p.comps) }

// IsEmpty returns true if the path has no components
func (p Path) IsEmpty() bool { return len(p.comps) == 0 }

// IsAbs returns true if the first component is the root marker
func (p Path) IsAbs() bool {
	return len(p.comps) > 0 && p.comps[0].kind == KindRoot
}

// First returns the first component or COMPONENT_NOT_FOUND when empty
func (p Path) First() (Component, error) {
	if len(p.comps) == 0 {
		return Component{}, errors.New(errors.ErrComponentNotFound, "path has no components")
	}
	return p.comps[0], nil
}

// Last returns the last component or COMPONENT_NOT_FOUND when empty
func (p Path) Last() (Component, error) {
	if len(p.comps) == 0 {
		return Component{}, errors.New(errors.ErrComponentNotFound, "path has no components")
	}
	return p.comps[len(p.comps)-1], nil
}

// First returns the first component of the given path string
func First(s string) (Component, error) {
	return Parse(s).First()
}

// Last returns the last component of the given path string
func Last(s string) (Component, error) {
	return Parse(s).Last()
}
