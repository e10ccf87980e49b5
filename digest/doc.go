// Package digest computes release-file digests and their on-disk sidecars.
//
// For each release file three digests are computed: blake2b (512-bit),
// sha512 and sha3_512. Each digest is persisted as a sibling file named
// '<file>.<algorithm>' holding the bare lowercase hex string, and the full
// mapping is persisted as '<file>.json'. All outputs are overwritten
// unconditionally on every run.
package digest
