package saltver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionFile returns the path of the version file below the repository root.
func VersionFile(root string) string {
	return filepath.Join(root, "salt", "_version.txt")
}

// Discover obtains the Salt version by running the in-tree discovery script
// and capturing its standard output, trimmed of surrounding whitespace.
// The root must be a repository checkout, identified by a '.git' entry.
func Discover(root string) (string, error) {
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotARepo
		}
		return "", err
	}
	cmd := exec.Command("python3", filepath.Join("salt", "version.py"))
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running salt/version.py: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Validate checks that the version parses as a loose semantic version.
// A 'v' prefix and 0-prefixed segments are accepted, but the version must
// have three dot-separated segments (e.g. 3007.1.0).
func Validate(version string) error {
	if len(strings.SplitN(version, ".", 3)) != 3 {
		return fmt.Errorf("invalid version %q: %w", version, semver.ErrInvalidSemVer)
	}
	if _, err := semver.NewVersion(version); err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	return nil
}

// Write writes the version string, verbatim and without a trailing newline,
// to the version file below root. An existing file is an error unless
// overwrite is set, in which case it is removed first.
func Write(root, version string, overwrite bool) error {
	target := VersionFile(root)
	if _, err := os.Stat(target); err == nil {
		if !overwrite {
			return ErrVersionFileExists
		}
		if err := os.Remove(target); err != nil {
			return fmt.Errorf("removing %s: %w", target, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	info, err := os.Stat(filepath.Join(root, "salt"))
	if err != nil || !info.IsDir() {
		return ErrNoSaltDir
	}

	if err := os.WriteFile(target, []byte(version), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// ciExports maps the CI-provided environment variables naming output files
// to the key written into each of them.
var ciExports = []struct {
	envVar string
	key    string
}{
	{"GITHUB_ENV", "SALT_VERSION"},
	{"GITHUB_OUTPUT", "salt-version"},
}

// ExportCI appends a 'key=version' line to each CI output file named by the
// GITHUB_ENV and GITHUB_OUTPUT environment variables. Unset variables are
// skipped. infof, when non-nil, receives a progress line per export.
func ExportCI(version string, infof func(format string, args ...any)) error {
	for _, e := range ciExports {
		path := os.Getenv(e.envVar)
		if path == "" {
			continue
		}
		line := e.key + "=" + version
		if infof != nil {
			infof("Writing '%s' to '$%s' file: %s", line, e.envVar, path)
		}
		if err := appendLine(path, line); err != nil {
			return fmt.Errorf("writing to '$%s' file %s: %w", e.envVar, path, err)
		}
	}
	return nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
