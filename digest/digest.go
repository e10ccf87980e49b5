package digest

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// chunkSize is the size of the reusable read buffer used to stream file
// contents through a digest.
const chunkSize = 256 * 1024

// Algorithms lists the supported digest algorithms in output order. The
// identifiers double as the sidecar file suffixes and the JSON summary keys.
var Algorithms = []string{"blake2b", "sha512", "sha3_512"}

// Digests maps an algorithm identifier to a lowercase hex digest string.
type Digests map[string]string

func newHash(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "blake2b":
		return blake2b.New512(nil)
	case "sha512":
		return sha512.New(), nil
	case "sha3_512":
		return sha3.New512(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// Sum computes the named digest of everything read from r and returns it as
// a lowercase hexadecimal string. Contents are streamed through the digest
// in fixed-size chunks over a reusable buffer.
func Sum(r io.Reader, algorithm string) (string, error) {
	h, err := newHash(algorithm)
	if err != nil {
		return "", err
	}
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile computes the named digest of the file at path. The file is opened
// for the duration of this one computation only.
func HashFile(path, algorithm string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Sum(f, algorithm)
}

// SidecarPath returns the path of the per-algorithm digest file written
// alongside the hashed file.
func SidecarPath(path, algorithm string) string {
	return filepath.Join(filepath.Dir(path), filepath.Base(path)+"."+algorithm)
}

// SummaryPath returns the path of the JSON summary file written alongside
// the hashed file.
func SummaryPath(path string) string {
	return filepath.Join(filepath.Dir(path), filepath.Base(path)+".json")
}

// WriteSidecar writes the bare hex digest, without a trailing newline, to
// the sidecar file for path and algorithm, replacing any previous contents.
func WriteSidecar(path, algorithm, hexdigest string) error {
	return os.WriteFile(SidecarPath(path, algorithm), []byte(hexdigest), 0o644)
}

// WriteSummary serializes the digest mapping as JSON to the summary file for
// path, replacing any previous contents.
func WriteSummary(path string, digests Digests) error {
	data, err := json.Marshal(digests)
	if err != nil {
		return err
	}
	return os.WriteFile(SummaryPath(path), data, 0o644)
}
