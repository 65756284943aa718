package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var renameCmd = &cobra.Command{
	Use:   "rename <archive.pack> <tree-path> <new-name>",
	Short: "Rename a file's leaf, a folder's prefix component, or the archive",
	Long: `Rename changes the leaf name of a file, the prefix component of a
folder, or (when tree-path names the archive itself) the archive's display
name only. new-name must not be empty, contain a path separator, or
contain whitespace. Saves the archive back to disk on success.

Examples:
  packedit rename mymod.pack db/tables/my_table/db.bin new_db.bin`,
	Args: cobra.ExactArgs(3),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	treePath := strings.Split(args[1], "/")
	if err := packfile.Rename(pf, treePath, args[2]); err != nil {
		return err
	}

	if err := packfile.Save(pf, ""); err != nil {
		return err
	}

	fmt.Printf("Renamed %s to %s\n", args[1], args[2])
	return nil
}
