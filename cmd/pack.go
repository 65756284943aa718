package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var newMagic string

var newCmd = &cobra.Command{
	Use:   "new <name> <out.pack>",
	Short: "Create a fresh, empty PackFile archive",
	Long: `Create a fresh, empty archive with the given display name and magic,
and save it to out.pack. A new archive is always of PackFileType Mod.

Examples:
  # Create an empty PFH5 archive (the default)
  packedit new mymod mymod.pack

  # Create an empty PFH4 archive
  packedit new mymod mymod.pack --magic PFH4`,
	Args: cobra.ExactArgs(2),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newMagic, "magic", string(packfile.MagicPFH5),
		"archive magic: PFH5, PFH4, PFH3, or PFH0")
}

func runNew(cmd *cobra.Command, args []string) error {
	magic := packfile.Magic(newMagic)
	if !packfile.ValidMagic(magic) {
		return fmt.Errorf("invalid magic %q", newMagic)
	}

	pf := packfile.New(args[0], magic)
	if err := packfile.Save(pf, args[1]); err != nil {
		return err
	}

	fmt.Printf("Created %s (%s)\n", args[1], magic)
	return nil
}
