package sys

import (
	"github.com/phR0ze/fungus-sub000/pkg/path"
)

// overlay resolves variables from a fixed map before the wrapped system
type overlay struct {
	path.System
	vars map[string]string
}

// WithVars returns a System whose variable lookups consult the given
// map before delegating to the wrapped system. Configured variables
// shadow the real environment; an empty map returns the system
// unchanged.
func WithVars(system path.System, vars map[string]string) path.System {
	if len(vars) == 0 {
		return system
	}
	return &overlay{System: system, vars: vars}
}

func (o *overlay) Lookup(name string) (string, error) {
	if val, ok := o.vars[name]; ok {
		return val, nil
	}
	return o.System.Lookup(name)
}
