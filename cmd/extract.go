package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive.pack> <tree-path> <dest>",
	Short: "Extract a file, folder, or whole archive to disk",
	Long: `Extract writes the file or subtree named by tree-path to dest on disk.

tree-path is a slash-separated path inside the archive (e.g. "data/db.bin"),
the archive's display name to extract everything, or a folder prefix to
extract a subtree. Extracting a folder keeps the folder's own name under
dest. Per-file write failures are collected rather than aborting the whole
extraction.

Examples:
  # Extract a single file
  packedit extract mymod.pack db/tables/my_table out/my_table

  # Extract an entire folder (written to out/ui/..., the folder name is kept)
  packedit extract mymod.pack ui out/

  # Extract everything
  packedit extract mymod.pack mymod.pack out/`,
	Args: cobra.ExactArgs(3),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	treePath := strings.Split(args[1], "/")
	result, err := packfile.Extract(pf, treePath, args[2])
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d file(s)\n", result.Extracted)
	if len(result.Failed) > 0 {
		fmt.Printf("Failed to write %d file(s):\n", len(result.Failed))
		for _, path := range result.Failed {
			fmt.Printf("  %s\n", path)
		}
	}
	return nil
}
