package path

import (
	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// System bundles the collaborators that full path resolution consults:
// everything an ExpansionContext supplies plus the current working
// directory.
type System interface {
	ExpansionContext

	// Cwd returns the current working directory
	Cwd() (string, error)
}

// Abs returns the path in an absolute clean form. The input is
// expanded, stripped of any URI-style protocol prefix, cleaned and, if
// still relative, resolved against the system's working directory. Each
// step's failure short-circuits the rest; an empty input fails with
// EMPTY.
func Abs(s string, sys System) (string, error) {
	if s == "" {
		return "", errors.New(errors.ErrEmpty, "path is empty")
	}

	// Expand home directory and environment variables
	expanded, err := Expand(s, sys)
	if err != nil {
		return "", err
	}

	// Trim protocol prefix if needed
	expanded = TrimProtocol(expanded)

	// Clean the resulting path
	p := Parse(expanded).Clean()
	if p.IsAbs() {
		return p.String(), nil
	}

	// Expand relative directories against the working directory
	anchor, err := sys.Cwd()
	if err != nil {
		return "", err
	}
	comps := p.comps
	for len(comps) > 0 {
		switch comps[0].kind {
		case KindCurrentDir:
			comps = comps[1:]
		case KindParentDir:
			anchor, err = parent(anchor)
			if err != nil {
				return "", err
			}
			comps = comps[1:]
		default:
			return Mash(anchor, Path{comps: comps}.String()), nil
		}
	}
	return anchor, nil
}

// parent returns the path without its final component or
// PARENT_NOT_FOUND when there is nothing above it.
func parent(s string) (string, error) {
	comps := Parse(s).comps
	if len(comps) <= 1 {
		return "", errors.Newf(errors.ErrParentNotFound,
			"path %q has no parent", s)
	}
	return Path{comps: comps[:len(comps)-1]}.String(), nil
}

// Dir returns the path without its final component, if there is one.
// The parent of a rooted single component is the root itself; the root
// and the empty path have no parent.
func Dir(s string) (string, error) {
	return parent(s)
}
