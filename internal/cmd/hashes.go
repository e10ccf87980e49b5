package cmd

import (
	"github.com/saltforge/pkgtool/digest"
	"github.com/spf13/cobra"
)

// NewGenerateHashesCmd creates and returns the generate-hashes subcommand.
// For every file passed it writes one digest sidecar per algorithm plus a
// combined JSON summary, next to the file.
func NewGenerateHashesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-hashes FILE...",
		Short: "Generate blake2b, sha512 and sha3_512 digests for the passed files",
		Long: `Generate blake2b, sha512 and sha3_512 digests for the passed files.

Each digest is written to a sibling file named '<file>.<algorithm>' and the
combined mapping to '<file>.json'. Existing digest files are overwritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateHashes(cmd, args)
		},
	}
}

func runGenerateHashes(cmd *cobra.Command, files []string) error {
	for _, path := range files {
		cmd.Printf("* Processing %s ...\n", path)
		digests := digest.Digests{}
		for _, algorithm := range digest.Algorithms {
			cmd.Printf("   * Calculating %s ...\n", algorithm)
			hexdigest, err := digest.HashFile(path, algorithm)
			if err != nil {
				return err
			}
			cmd.Printf("   * Writing %s ...\n", digest.SidecarPath(path, algorithm))
			if err := digest.WriteSidecar(path, algorithm, hexdigest); err != nil {
				return err
			}
			digests[algorithm] = hexdigest
		}
		cmd.Printf("   * Writing %s ...\n", digest.SummaryPath(path))
		if err := digest.WriteSummary(path, digests); err != nil {
			return err
		}
	}
	cmd.Println("Done")
	return nil
}
