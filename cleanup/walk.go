package cleanup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Clean recursively deletes entries below root whose absolute slash-form
// path matches any pattern in ps. Directories are matched against
// DirPatterns and removed whole, without descending further; files are
// matched against FilePatterns and removed individually. Symbolic links are
// never followed. infof, when non-nil, receives a line per deletion.
//
// A file that disappears between being listed and being removed is not an
// error; other deletion and listing failures abort the walk.
func Clean(root string, ps PatternSet, infof func(format string, args ...any)) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	return clean(absRoot, ps, infof)
}

func clean(dir string, ps PatternSet, infof func(format string, args ...any)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		// An ancestor deletion may have removed this entry already.
		if _, err := os.Lstat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		matchPath := filepath.ToSlash(path)

		if entry.IsDir() {
			pattern, matched, err := matchAny(ps.DirPatterns, matchPath)
			if err != nil {
				return err
			}
			if matched {
				if infof != nil {
					infof("Deleting directory: %s; Matching pattern: %q", matchPath, pattern)
				}
				if err := os.RemoveAll(path); err != nil {
					return err
				}
				continue
			}
			if err := clean(path, ps, infof); err != nil {
				return err
			}
			continue
		}

		pattern, matched, err := matchAny(ps.FilePatterns, matchPath)
		if err != nil {
			return err
		}
		if matched {
			if infof != nil {
				infof("Deleting file: %s; Matching pattern: %q", matchPath, pattern)
			}
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	return nil
}

// matchAny tests path against each pattern in turn and returns the first
// pattern that matches.
func matchAny(patterns []string, path string) (string, bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return "", false, fmt.Errorf("invalid cleanup pattern %q: %w", pattern, err)
		}
		if ok {
			return pattern, true, nil
		}
	}
	return "", false, nil
}
