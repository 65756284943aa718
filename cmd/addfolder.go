package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var addFolderCmd = &cobra.Command{
	Use:   "add-folder <archive.pack> <host-dir> <tree-prefix>",
	Short: "Recursively add a directory to an archive",
	Long: `Walk host-dir recursively and add every file found under a tree path
built by appending each file's relative path to tree-prefix. This is
best-effort: a file whose resulting path collides is skipped and reported,
not aborted. Saves the archive back to disk on success.

Examples:
  packedit add-folder mymod.pack ./ui ui`,
	Args: cobra.ExactArgs(3),
	RunE: runAddFolder,
}

func init() {
	rootCmd.AddCommand(addFolderCmd)
}

func runAddFolder(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	var treePrefix []string
	if args[2] != "" {
		treePrefix = strings.Split(args[2], "/")
	}

	result, err := packfile.AddFolder(pf, args[1], treePrefix)
	if err != nil {
		return err
	}

	if err := packfile.Save(pf, ""); err != nil {
		return err
	}

	fmt.Printf("Added %d file(s)\n", result.Added)
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped %d file(s) already present:\n", len(result.Skipped))
		for _, path := range result.Skipped {
			fmt.Printf("  %s\n", path)
		}
	}
	return nil
}
