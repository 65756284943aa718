package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
	"github.com/wismer/packedit/pkg/siegeai"
)

var patchSiegeAICmd = &cobra.Command{
	Use:   "patch-siege-ai <archive.pack>",
	Short: "Patch SiegeAI map-blob hints in a battle map archive",
	Long: `Rewrite the first AIH_DEFENSIVE_HILL hint as AIH_FORT_PERIMETER in every
whitelisted map-blob data file under terrain/tiles/battle/_assembly_kit, warning if
more than one defensive hill hint was found, and delete the leftover .xml
files exported alongside them. Saves the archive back to disk on success.

Examples:
  packedit patch-siege-ai mymod.pack`,
	Args: cobra.ExactArgs(1),
	RunE: runPatchSiegeAI,
}

func init() {
	rootCmd.AddCommand(patchSiegeAICmd)
}

func runPatchSiegeAI(cmd *cobra.Command, args []string) error {
	pf, err := packfile.Open(args[0])
	if err != nil {
		return err
	}

	result, err := siegeai.Patch(pf)
	if err != nil {
		return err
	}

	if err := packfile.Save(pf, ""); err != nil {
		return err
	}

	fmt.Println(result.Summary())
	return nil
}
