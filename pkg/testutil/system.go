package testutil

import (
	"github.com/phR0ze/fungus-sub000/pkg/errors"
)

// FakeSystem is an in-memory stand-in for the operating-system
// collaborators consulted by path resolution. It satisfies both
// path.ExpansionContext and path.System, letting engine tests run
// hermetically and in parallel without mutating real environment
// state.
type FakeSystem struct {
	// CwdPath is returned by Cwd
	CwdPath string

	// HomePath is returned by Home
	HomePath string

	// Env backs Lookup; absent names fail with VAR_NOT_FOUND
	Env map[string]string

	// CwdErr and HomeErr, when set, override the happy path
	CwdErr  error
	HomeErr error
}

// NewFakeSystem returns a FakeSystem with sensible defaults
func NewFakeSystem() *FakeSystem {
	return &FakeSystem{
		CwdPath:  "/work/project",
		HomePath: "/home/user",
		Env:      map[string]string{},
	}
}

// Cwd returns the configured working directory
func (s *FakeSystem) Cwd() (string, error) {
	if s.CwdErr != nil {
		return "", s.CwdErr
	}
	return s.CwdPath, nil
}

// Home returns the configured home directory
func (s *FakeSystem) Home() (string, error) {
	if s.HomeErr != nil {
		return "", s.HomeErr
	}
	return s.HomePath, nil
}

// Lookup returns the configured value for name
func (s *FakeSystem) Lookup(name string) (string, error) {
	if val, ok := s.Env[name]; ok {
		return val, nil
	}
	return "", errors.Newf(errors.ErrVarNotFound,
		"environment variable %q not found", name)
}

// WithVar sets an environment variable and returns the system for
// chaining
func (s *FakeSystem) WithVar(name, value string) *FakeSystem {
	s.Env[name] = value
	return s
}
