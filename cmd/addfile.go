package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var addFileCmd = &cobra.Command{
	Use:   "add-file <archive.pack> <host-path> <tree-path>",
	Short: "Add a single file to an archive",
	Long: `Read host-path from disk and add it to the archive at tree-path, a
slash-separated path (e.g. "data/db/my_table"). Fails if tree-path already
exists, leaving the archive unchanged. Saves the archive back to disk on
success.

Examples:
  packedit add-file mymod.pack ./db.bin db/tables/my_table/db.bin`,
	Args: cobra.ExactArgs(3),
	RunE: runAddFile,
}

func init() {
	rootCmd.AddCommand(addFileCmd)
}

func runAddFile(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	treePath := strings.Split(args[2], "/")
	if err := packfile.AddFile(pf, args[1], treePath); err != nil {
		return err
	}

	if err := packfile.Save(pf, ""); err != nil {
		return err
	}

	fmt.Printf("Added %s\n", args[2])
	return nil
}
