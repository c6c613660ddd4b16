// Package testutil provides test helpers for fungus: lightweight
// assertion functions and an in-memory double for the operating-system
// collaborators used by path resolution.
package testutil
