package cmd

import (
	"path/filepath"
	"runtime"

	"github.com/saltforge/pkgtool/cleanup"
	"github.com/spf13/cobra"
)

// NewCleanupCmd creates and returns the pre-archive-cleanup subcommand.
// It deletes paths below the given directory that match the configured
// cleanup rules for the active mode and platform.
func NewCleanupCmd() *cobra.Command {
	var (
		pkgMode   bool
		rulesPath string
		platform  string
	)

	cmd := &cobra.Command{
		Use:   "pre-archive-cleanup PATH",
		Short: "Clean the provided path of files that should not be included in the archive",
		Long: `Clean the provided path of paths that should not be included in the archive.

For example:

  * '__pycache__' directories
  * '*.pyc' files
  * '*.pyo' files

The rules applied come from the repository's cleanup-rules file, selected by
mode ('ci' by default, 'pkg' with --pkg) and platform. On Windows and macOS
some additional cleanup is also done.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := cmd.Flags().GetString("repo-root")
			if err != nil {
				return err
			}
			if rulesPath == "" {
				rulesPath = filepath.Join(repoRoot, "pkg", "common", "env-cleanup-rules.yml")
			}
			mode := cleanup.ModeCI
			if pkgMode {
				mode = cleanup.ModePkg
			}

			ps, err := cleanup.LoadRules(rulesPath, mode, platform)
			if err != nil {
				return err
			}
			return cleanup.Clean(args[0], ps, func(format string, args ...any) {
				cmd.Printf(format+"\n", args...)
			})
		},
	}

	cmd.Flags().BoolVar(&pkgMode, "pkg", false, "Perform extended, pre-packaging cleanup routines")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to the cleanup rules file (default <repo-root>/pkg/common/env-cleanup-rules.yml)")
	cmd.Flags().StringVar(&platform, "platform", defaultPlatform(), "Rule platform to apply (windows, darwin or linux)")

	return cmd
}

// defaultPlatform maps the running OS onto a rules-file platform key.
// Anything that is not Windows or macOS uses the linux rules.
func defaultPlatform() string {
	switch runtime.GOOS {
	case "windows", "darwin":
		return runtime.GOOS
	}
	return "linux"
}
