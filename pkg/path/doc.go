// Package path implements lexical path resolution for fungus.
//
// The package turns arbitrary user-supplied path strings into canonical
// absolute paths and provides the inverse and auxiliary operations that
// higher-level file tooling needs. It handles:
//
//   - Component-level parsing and rendering of native path strings
//   - Lexical cleaning (shortest equivalent form, no symlink resolution)
//   - Tilde and $VAR/${VAR} expansion with ambiguity detection
//   - Absolute/relative conversion against the working directory or an
//     explicit base path
//   - Root-stripping joins (Mash) and prefix/suffix/extension trimming
//
// # Collaborators
//
// All process state is injected. Operations that expand or absolutize
// accept an ExpansionContext or System value supplying the home
// directory, environment lookups and the current working directory; the
// engine itself never reads globals or touches the filesystem. This
// keeps every operation deterministic and safe to call concurrently,
// and lets tests substitute doubles without mutating real environment
// state.
//
// # Errors
//
// Operations fail fast with coded errors from pkg/errors: EMPTY,
// MULTIPLE_HOME_SYMBOLS, INVALID_EXPANSION, COMPONENT_NOT_FOUND and
// PARENT_NOT_FOUND, plus collaborator failures passed through
// unchanged. Ambiguity is always surfaced to the caller rather than
// guessed at.
package path
