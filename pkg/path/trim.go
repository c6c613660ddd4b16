package path

import (
	"strings"
)

// Mash joins two paths, dropping the base's root marker first so that
// an absolute base extends the directory rather than replacing it:
// Mash("/foo", "/bar") yields "/foo/bar". The result is re-rendered
// through the component model so no doubled or trailing separators
// remain. Unlike Clean, Mash never cancels parent-dir components.
func Mash(dir, base string) string {
	comps := Parse(dir).comps
	bcomps := Parse(base).comps
	if len(bcomps) > 0 && bcomps[0].kind == KindRoot {
		bcomps = bcomps[1:]
	}
	joined := append(append([]Component(nil), comps...), bcomps...)

	// Inner current-dir components add nothing to a join; only a
	// leading one is meaningful.
	out := joined[:0]
	for i, c := range joined {
		if c.kind == KindCurrentDir && i > 0 {
			continue
		}
		out = append(out, c)
	}
	return Path{comps: out}.String()
}

// TrimFirst returns the path with the first component dropped. A
// single-component path yields the empty path.
func TrimFirst(s string) string {
	comps := Parse(s).comps
	if len(comps) == 0 {
		return ""
	}
	return Path{comps: comps[1:]}.String()
}

// TrimLast returns the path with the last component dropped. A
// single-component path yields the empty path.
func TrimLast(s string) string {
	comps := Parse(s).comps
	if len(comps) == 0 {
		return ""
	}
	return Path{comps: comps[:len(comps)-1]}.String()
}

// TrimPrefix returns the path with the given string prefix removed, or
// the path unchanged when it does not start with the prefix.
func TrimPrefix(s, prefix string) string {
	if prefix != "" && strings.HasPrefix(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

// TrimSuffix returns the path with the given string suffix removed, or
// the path unchanged when it does not end with the suffix.
func TrimSuffix(s, suffix string) string {
	if suffix != "" && strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}

// TrimExt returns the path with its final extension removed, or the
// path unchanged when the final segment has no extension.
func TrimExt(s string) string {
	ext, err := Ext(s)
	if err != nil {
		return s
	}
	return TrimSuffix(s, "."+ext)
}

// protocol prefixes recognized by TrimProtocol
var protocols = []string{"file://", "ftp://", "http://", "https://"}

// TrimProtocol returns the path with a well-known protocol prefix
// removed. Only text preceding the first "//" that is exactly a
// recognized scheme, case-insensitively, is treated as a protocol;
// anything else, e.g. "foo//bar", is left untouched.
func TrimProtocol(s string) string {
	i := strings.Index(s, "//")
	if i < 0 {
		return s
	}
	prefix, suffix := s[:i+2], s[i+2:]
	lower := strings.ToLower(prefix)
	for _, proto := range protocols {
		if lower == proto {
			return suffix
		}
	}
	return s
}
