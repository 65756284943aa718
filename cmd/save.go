package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var saveCmd = &cobra.Command{
	Use:   "save <archive.pack> [output.pack]",
	Short: "Re-encode and save a PackFile archive",
	Long: `Open, decode, and re-encode an archive, writing the result to
output.pack, or back to archive.pack if output.pack is omitted.

Examples:
  # Rewrite the archive in place
  packedit save mymod.pack

  # Save a copy under a new name
  packedit save mymod.pack mymod-copy.pack`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	out := ""
	if len(args) == 2 {
		out = args[1]
	}
	if err := packfile.Save(pf, out); err != nil {
		return err
	}

	fmt.Printf("Saved %s (%d entries)\n", pf.FilePath, len(pf.Entries))
	return nil
}
