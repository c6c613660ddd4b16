package path

import (
	"strings"

	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// ExpansionContext supplies the read-only process state consulted while
// expanding a path. Values are provided per call and never retained.
type ExpansionContext interface {
	// Home returns the user's home directory
	Home() (string, error)

	// Lookup returns the value of the named environment variable or a
	// VAR_NOT_FOUND error when it is not present
	Lookup(name string) (string, error)
}

// Expand rewrites the path, replacing a leading ~ with the home
// directory and $NAME/${NAME} segments with environment values from the
// context. Expansion is a single pass: substituted values are not
// themselves expanded. The filesystem is never touched.
//
// A ~ anywhere but the start of the path fails with INVALID_EXPANSION
// and more than one ~ fails with MULTIPLE_HOME_SYMBOLS.
func Expand(s string, ctx ExpansionContext) (string, error) {
	expanded := s
	switch cnt := strings.Count(s, "~"); {
	case cnt > 1:
		return "", errors.New(errors.ErrMultipleHomeSymbols,
			"only a single home symbol is allowed").WithDetail("path", s)

	case cnt == 1 && s != "~" && !strings.HasPrefix(s, "~"+Separator):
		return "", errors.New(errors.ErrInvalidExpansion,
			"home symbol must lead the path").WithDetail("path", s)

	case cnt == 1:
		home, err := ctx.Home()
		if err != nil {
			return "", err
		}
		if s == "~" {
			expanded = home
		} else {
			expanded = home + s[1:]
		}
	}

	return expandVars(expanded, ctx)
}

// expandVars substitutes $NAME and ${NAME} segments with values from
// the context's environment lookup.
func expandVars(s string, ctx ExpansionContext) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	p := Parse(s)
	comps := p.comps
	out := make([]Component, 0, len(comps))
	for _, c := range comps {
		if c.kind != KindSegment || !strings.HasPrefix(c.name, "$") {
			out = append(out, c)
			continue
		}

		name := c.name[1:]
		if strings.HasPrefix(name, "{") {
			if !strings.HasSuffix(name, "}") {
				return "", errors.Newf(errors.ErrInvalidExpansion,
					"unclosed brace in variable reference %q", c.name).WithDetail("path", s)
			}
			name = name[1 : len(name)-1]
		}
		if name == "" {
			return "", errors.Newf(errors.ErrInvalidExpansion,
				"empty variable reference %q", c.name).WithDetail("path", s)
		}

		val, err := ctx.Lookup(name)
		if err != nil {
			return "", err
		}
		out = append(out, Segment(val))
	}
	return Path{comps: out}.String(), nil
}
