package path

// Clean returns the shortest path lexically equivalent to the path.
// Processing is purely lexical and does not resolve symlinks; use the
// filesystem's canonicalization for that. The following rules are
// applied iteratively until no further processing can be done:
//
//  1. Replace multiple separators with a single one
//  2. Eliminate each . path name element (the current directory)
//  3. Eliminate each inner .. path name element (the parent directory)
//     along with the non-.. element that precedes it
//  4. Eliminate .. elements that begin a rooted path:
//     that is, replace "/.." by "/" at the beginning of a path
//  5. Leave intact .. elements that begin a non-rooted path
//  6. Drop the trailing separator unless it is the root
//
// If the result of this process is an empty string, "." is returned,
// representing the current directory.
func Clean(s string) string {
	return Parse(s).Clean().String()
}

// Clean returns the shortest component sequence lexically equivalent to
// the path per the rules documented on the package-level Clean. Clean
// is idempotent and total; no error is possible.
func (p Path) Clean() Path {
	// Parse already collapses duplicate separators and drops the
	// trailing one, covering rules 1 and 6.
	out := make([]Component, 0, len(p.comps))
	for _, c := range p.comps {
		switch c.kind {
		case KindCurrentDir:
			// rule 2; a path consisting only of dots is restored below

		case KindParentDir:
			if n := len(out); n > 0 {
				switch out[n-1].kind {
				case KindSegment:
					// rule 3: cancel against the preceding segment
					out = out[:n-1]
					continue
				case KindRoot:
					// rule 4: cannot go above root
					continue
				}
			}
			// rule 5: leading .. in a non-rooted path survives
			out = append(out, c)

		default:
			out = append(out, c)
		}
	}

	if len(out) == 0 {
		out = append(out, CurrentDir())
	}
	return Path{comps: out}
}
