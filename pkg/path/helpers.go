package path

import (
	"strings"

	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// Base returns the final segment of the path, ignoring any trailing
// current-dir components. Fails with FILENAME_NOT_FOUND when the path
// holds no named segment at its end.
func Base(s string) (string, error) {
	comps := Parse(s).comps
	for i := len(comps) - 1; i >= 0; i-- {
		switch comps[i].kind {
		case KindCurrentDir:
			continue
		case KindSegment:
			return comps[i].name, nil
		default:
			return "", errors.Newf(errors.ErrFileNameNotFound,
				"path %q has no filename", s)
		}
	}
	return "", errors.Newf(errors.ErrFileNameNotFound, "path %q has no filename", s)
}

// Ext returns the extension of the final segment without the leading
// dot. A leading dot alone, as in ".bashrc", does not mark an
// extension. Fails with EXTENSION_NOT_FOUND when there is none.
func Ext(s string) (string, error) {
	base, err := Base(s)
	if err != nil {
		return "", errors.Newf(errors.ErrExtensionNotFound, "path %q has no extension", s)
	}
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return "", errors.Newf(errors.ErrExtensionNotFound, "path %q has no extension", s)
	}
	return base[i+1:], nil
}

// Name returns the final segment of the path without its extension
func Name(s string) (string, error) {
	base, err := Base(s)
	if err != nil {
		return "", err
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i], nil
	}
	return base, nil
}

// Has returns true if the path's string form contains the given value
func Has(s, value string) bool {
	return strings.Contains(s, value)
}

// HasPrefix returns true if the path's string form starts with the
// given value
func HasPrefix(s, value string) bool {
	return strings.HasPrefix(s, value)
}

// HasSuffix returns true if the path's string form ends with the given
// value
func HasSuffix(s, value string) bool {
	return strings.HasSuffix(s, value)
}

// Concat appends the value directly to the path's string form without
// inserting a separator
func Concat(s, value string) string {
	return s + value
}
