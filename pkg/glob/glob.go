package glob

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Value is a set of doublestar include patterns minus a set of exclude
// patterns.
type Value struct {
	Patterns []string
	Excludes []string
}

// Apply evaluates the glob over fsys.  The result is sorted and holds each
// matching path once.
func Apply(g Value, fsys fs.FS) ([]string, error) {
	// part 1: gather candidates
	seen := make(map[string]bool)
	var includes []string
	for _, pattern := range g.Patterns {
		names, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			// doublestar.Glob only fails on an invalid pattern.
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				includes = append(includes, name)
			}
		}
	}
	for _, exclude := range g.Excludes {
		if !doublestar.ValidatePattern(exclude) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", exclude, doublestar.ErrBadPattern)
		}
	}

	// part 2: filter candidates
	var srcs []string
loop:
	for _, name := range includes {
		for _, exclude := range g.Excludes {
			if ok, _ := doublestar.Match(exclude, name); ok {
				continue loop
			}
		}
		srcs = append(srcs, name)
	}

	sort.Strings(srcs)
	return srcs, nil
}
