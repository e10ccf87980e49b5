// Package main provides the pkgtool command-line interface.
//
// pkgtool is a collection of small utilities used by the Salt packaging
// pipeline. It writes the discovered release version to the source tree,
// cleans build trees of paths that should not end up in release archives,
// and generates cryptographic digests for release files.
//
// The binary supports multiple subcommands:
//   - set-salt-version: Write the Salt version to 'salt/_version.txt'
//   - pre-archive-cleanup: Delete paths matching the configured cleanup rules
//   - generate-hashes: Generate blake2b, sha512 and sha3_512 digests for files
package main
