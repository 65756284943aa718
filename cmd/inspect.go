package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.pack>",
	Short: "Display PackFile archive structure",
	Long: `Display the structure of a PackFile archive: magic, bitmask flags,
parent references, and packed-file entries.

Examples:
  packedit inspect mymod.pack`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Archive: %s\n", pf.DisplayName)
	fmt.Printf("Magic: %s\n", pf.Header.Magic)
	fmt.Printf("PackFileType: %d\n", pf.Header.PackFileType)
	fmt.Printf("Bitmask: 0x%02X\n", pf.Header.Bitmask)
	fmt.Printf("Parents (%d):\n", len(pf.Parents))
	for _, p := range pf.Parents {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println()

	fmt.Printf("Entries (%d):\n", len(pf.Entries))
	for i, e := range pf.Entries {
		fmt.Printf("  [%d] %s (%d bytes)\n", i, e.PathString(), e.Size)
	}
	return nil
}
