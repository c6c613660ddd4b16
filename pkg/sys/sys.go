// Package sys provides the operating-system collaborators consulted by
// path resolution: current working directory, home directory and
// environment-variable lookup. The engine in pkg/path accepts these
// through small interfaces so tests can substitute doubles; this
// package holds the real implementation.
package sys

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// OS reads process state directly from the operating system. The zero
// value is ready to use.
type OS struct{}

// Cwd returns the current working directory
func (OS) Cwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCwdAccess,
			"failed to get current working directory")
	}
	return wd, nil
}

// Home returns the user's home directory, falling back to the HOME
// environment variable and then the XDG home when the user database
// has no entry.
func (OS) Home() (string, error) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHomeNotFound, "failed to get home directory")
	}
	return "", errors.New(errors.ErrHomeNotFound, "failed to get home directory")
}

// Lookup returns the value of the named environment variable or a
// VAR_NOT_FOUND error when it is not present.
func (OS) Lookup(name string) (string, error) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return "", errors.Newf(errors.ErrVarNotFound,
			"environment variable %q not found", name)
	}
	return val, nil
}
