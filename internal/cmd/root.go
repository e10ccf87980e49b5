package cmd

import (
	"github.com/saltforge/pkgtool/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the pkgtool CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgtool",
		Short: "pkgtool - Salt packaging pipeline utilities",
		Long: `pkgtool bundles the utilities used while building Salt packages.

It writes the release version into the source tree, cleans build trees of
paths that must not be archived, and generates cryptographic digests for
release files.

Use subcommands to perform different operations:
  - set-salt-version: Write the Salt version to 'salt/_version.txt'
  - pre-archive-cleanup: Delete paths matching the configured cleanup rules
  - generate-hashes: Generate blake2b, sha512 and sha3_512 digests for files`,
		Version: version.GetFullVersion(),
	}

	groupRelease := "release"
	groupArchive := "archive"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupRelease,
		Title: "Release Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Commands",
	})

	rootCmd.PersistentFlags().String("repo-root", ".", "Path to the repository checkout root")

	setVersionCmd := NewSetVersionCmd()
	cleanupCmd := NewCleanupCmd()
	hashesCmd := NewGenerateHashesCmd()

	setVersionCmd.GroupID = groupRelease
	hashesCmd.GroupID = groupRelease
	cleanupCmd.GroupID = groupArchive

	rootCmd.AddCommand(setVersionCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(hashesCmd)

	return rootCmd
}
