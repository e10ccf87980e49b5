package digest

import "errors"

// Sentinel errors for package digest.
var (
	// ErrUnknownAlgorithm is returned for algorithm identifiers outside
	// the Algorithms list.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
)
