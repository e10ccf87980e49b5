package saltver

import "errors"

// Sentinel errors for package saltver.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrVersionFileExists is returned when the version file already exists
	// and overwriting was not requested.
	ErrVersionFileExists = errors.New("the 'salt/_version.txt' file already exists")

	// ErrNotARepo is returned when version discovery is attempted outside a
	// repository checkout (no '.git' marker below the root).
	ErrNotARepo = errors.New("not running from a Salt repository checkout")

	// ErrNoSaltDir is returned when the 'salt/' directory that should hold
	// the version file is missing.
	ErrNoSaltDir = errors.New("the path 'salt/' is not a directory")
)
