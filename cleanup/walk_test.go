package cleanup

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ciLinux = PatternSet{
	DirPatterns:  []string{"**/__pycache__"},
	FilePatterns: []string{"**/*.pyc", "**/*.pyo"},
}

// newBuildTree lays out a tree resembling an unpacked build, with entries
// the ci/linux rule set should remove and entries it should leave alone.
func newBuildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{
		"salt/modules/__pycache__",
		"salt/modules",
		"sub/deep/__pycache__",
		"__pycache__",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for _, file := range []string{
		"salt/modules/__pycache__/mod.cpython-310.pyc",
		"salt/modules/mod.py",
		"sub/deep/__pycache__/other.pyc",
		"__pycache__/top.pyc",
		"loose.pyc",
		"loose.pyo",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), []byte("x"), 0o644))
	}
	return root
}

// listTree returns the sorted relative paths of all entries below root.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)
	return paths
}

func TestClean(t *testing.T) {
	root := newBuildTree(t)

	require.NoError(t, Clean(root, ciLinux, nil))

	assert.Equal(t, []string{
		"notes.txt",
		"salt",
		"salt/modules",
		"salt/modules/mod.py",
		"sub",
		"sub/deep",
	}, listTree(t, root))
}

func TestCleanIsIdempotent(t *testing.T) {
	root := newBuildTree(t)

	require.NoError(t, Clean(root, ciLinux, nil))
	after := listTree(t, root)

	var deletions int
	require.NoError(t, Clean(root, ciLinux, func(string, ...any) { deletions++ }))
	assert.Zero(t, deletions, "second run should delete nothing further")
	assert.Equal(t, after, listTree(t, root))
}

func TestCleanEmptyPatternSetDeletesNothing(t *testing.T) {
	root := newBuildTree(t)
	before := listTree(t, root)

	require.NoError(t, Clean(root, PatternSet{}, nil))
	assert.Equal(t, before, listTree(t, root))
}

func TestCleanDoesNotFollowSymlinks(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "kept.pyc"), []byte("x"), 0o644))

	root := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	require.NoError(t, Clean(root, ciLinux, nil))

	_, err := os.Stat(filepath.Join(outside, "kept.pyc"))
	assert.NoError(t, err, "files behind a symlink must survive")
}

func TestCleanMissingRootIsNoop(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, Clean(root, ciLinux, nil))
}

func TestCleanInvalidPattern(t *testing.T) {
	root := newBuildTree(t)
	ps := PatternSet{FilePatterns: []string{"[unclosed"}}

	err := Clean(root, ps, nil)
	require.Error(t, err)
}

func TestMatchAny(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     string
		matched  bool
	}{
		{
			name:     "dir at depth",
			patterns: []string{"**/__pycache__"},
			path:     "/tmp/build/salt/__pycache__",
			want:     "**/__pycache__",
			matched:  true,
		},
		{
			name:     "file extension at depth",
			patterns: []string{"**/*.pyc"},
			path:     "/tmp/build/salt/modules/mod.pyc",
			want:     "**/*.pyc",
			matched:  true,
		},
		{
			name:     "first match wins",
			patterns: []string{"**/*.pyo", "**/*.pyc", "**/mod.*"},
			path:     "/tmp/build/mod.pyc",
			want:     "**/*.pyc",
			matched:  true,
		},
		{
			name:     "no match",
			patterns: []string{"**/*.pyc"},
			path:     "/tmp/build/mod.py",
			matched:  false,
		},
		{
			name:     "character class",
			patterns: []string{"**/*.py[co]"},
			path:     "/tmp/build/mod.pyo",
			want:     "**/*.py[co]",
			matched:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, matched, err := matchAny(tt.patterns, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.want, pattern)
		})
	}
}
