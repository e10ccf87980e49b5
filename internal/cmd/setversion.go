package cmd

import (
	"os"

	"github.com/saltforge/pkgtool/saltver"
	"github.com/spf13/cobra"
)

// NewSetVersionCmd creates and returns the set-salt-version subcommand.
// It writes the Salt release version into the source tree and, under CI,
// exports it to the GitHub Actions output files.
func NewSetVersionCmd() *cobra.Command {
	var (
		overwrite bool
		validate  bool
	)

	cmd := &cobra.Command{
		Use:   "set-salt-version [VERSION]",
		Short: "Write the Salt version to 'salt/_version.txt'",
		Long: `Write the Salt version to 'salt/_version.txt'.

If no version is passed it is discovered by running 'python3 salt/version.py'
inside the repository checkout. When the GITHUB_ENV or GITHUB_OUTPUT
environment variables are set, the version is additionally appended as a
key=value line to the named CI output files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := cmd.Flags().GetString("repo-root")
			if err != nil {
				return err
			}
			var version string
			if len(args) > 0 {
				version = args[0]
			}
			return runSetVersion(cmd, repoRoot, version, overwrite, validate)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite 'salt/_version.txt' if it already exists")
	cmd.Flags().BoolVar(&validate, "validate", false, "Fail unless the version parses as a loose semantic version")

	return cmd
}

func runSetVersion(cmd *cobra.Command, repoRoot, version string, overwrite, validate bool) error {
	// The existing-file check runs before discovery so a stale version file
	// is reported without shelling out.
	if _, err := os.Stat(saltver.VersionFile(repoRoot)); err == nil && !overwrite {
		return saltver.ErrVersionFileExists
	}

	if version == "" {
		cmd.Println("Discovering the Salt version...")
		discovered, err := saltver.Discover(repoRoot)
		if err != nil {
			return err
		}
		version = discovered
		cmd.Printf("Discovered Salt version: %q\n", version)
	}

	if validate {
		if err := saltver.Validate(version); err != nil {
			return err
		}
	}

	if err := saltver.Write(repoRoot, version, overwrite); err != nil {
		return err
	}
	cmd.Printf("Successfully wrote %q to 'salt/_version.txt'\n", version)

	return saltver.ExportCI(version, func(format string, args ...any) {
		cmd.Printf(format+"\n", args...)
	})
}
