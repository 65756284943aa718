package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <archive.pack> <tree-path>",
	Short: "Delete a file, folder, or the whole archive content",
	Long: `Delete removes the entry, entries, or whole archive content named by
tree-path, per its classification (file, folder prefix, or the archive's
own display name for everything). Saves the archive back to disk on
success.

Examples:
  packedit delete mymod.pack db/tables/my_table/db.bin`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	treePath := strings.Split(args[1], "/")
	if err := packfile.Delete(pf, treePath); err != nil {
		return err
	}

	if err := packfile.Save(pf, ""); err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", args[1])
	return nil
}
