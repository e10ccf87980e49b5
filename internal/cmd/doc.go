// Package cmd provides the command-line interface implementation for pkgtool.
//
// This package contains all the subcommand implementations for the pkgtool
// CLI. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - set-salt-version: Version-file writing with CI export
//   - pre-archive-cleanup: Rule-driven build-tree cleanup
//   - generate-hashes: Release-file digest generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands return errors through
// RunE; any failure surfaces as a non-zero process exit status.
package cmd
