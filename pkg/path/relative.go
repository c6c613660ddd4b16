package path

import (
	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// RelativeFrom returns the path expressed relative to the given base.
// Both inputs are absolutized first; relative inputs are resolved
// against the working directory. If the two resolve to the same
// location the absolutized path is returned. A base containing a
// parent-dir component past the shared prefix is ambiguous and the
// absolutized path is returned unchanged.
func RelativeFrom(path, base string, sys System) (string, error) {
	absPath, err := Abs(path, sys)
	if err != nil {
		return "", err
	}
	absBase, err := Abs(base, sys)
	if err != nil {
		return "", err
	}
	if absPath == absBase {
		return absPath, nil
	}

	x := Parse(absPath).comps
	y := Parse(absBase).comps
	var out []Component
	i, j := 0, 0
	for {
		switch {
		case i >= len(x) && j >= len(y):
			return Path{comps: out}.String(), nil

		case j >= len(y):
			// base exhausted, the rest of path applies verbatim
			out = append(out, x[i:]...)
			return Path{comps: out}.String(), nil

		case i >= len(x):
			// path exhausted, walk up out of base's remainder
			out = append(out, ParentDir())
			j++

		default:
			a, b := x[i], y[j]
			switch {
			case len(out) == 0 && a == b:
				// still in the common prefix

			case b.kind == KindCurrentDir:
				out = append(out, a)

			case b.kind == KindParentDir:
				// ambiguous base, bail with the resolved path
				return absPath, nil

			default:
				// diverged: one .. per remaining base component, then
				// path's tail
				for k := j + 1; k < len(y); k++ {
					out = append(out, ParentDir())
				}
				out = append(out, a)
				out = append(out, x[i+1:]...)
				return Path{comps: out}.String(), nil
			}
			i++
			j++
		}
	}
}

// AbsFrom resolves the path against the given base, whose last
// component is treated as a filename rather than a directory. The base
// is absolutized first. An already-absolute path, or one identical to
// the resolved base, is returned unchanged. A path that is empty or
// holds nothing but dot components fails with EMPTY.
func AbsFrom(path, base string, sys System) (string, error) {
	absBase, err := Abs(base, sys)
	if err != nil {
		return "", err
	}
	if Parse(path).IsAbs() || path == absBase {
		return path, nil
	}

	// Drop the filename to get the directory anchor
	anchor := Parse(absBase).comps
	if len(anchor) > 0 {
		anchor = anchor[:len(anchor)-1]
	}

	comps := Parse(path).comps
	for i, c := range comps {
		switch c.kind {
		case KindParentDir:
			if len(anchor) > 0 {
				anchor = anchor[:len(anchor)-1]
			}
		case KindSegment:
			joined := append(append([]Component(nil), anchor...), comps[i:]...)
			return Path{comps: joined}.Clean().String(), nil
		}
		// current-dir components are skipped
	}
	return "", errors.Newf(errors.ErrEmpty,
		"path %q has no segment to resolve", path)
}
