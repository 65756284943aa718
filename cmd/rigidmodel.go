package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/rigidmodel"
)

var rigidModelOutput string

var patchRigidModelCmd = &cobra.Command{
	Use:   "patch-rigidmodel <model-file>",
	Short: "Patch a RigidModel header from Attila (v6) to Warhammer (v7)",
	Long: `Decode a standalone RigidModel file, bump its version from 6 to 7, and
for each Lod set the first mysterious field to its index, the second to
0, and increase start_offset by 8*lods_count. Refuses a model that is
already version 7, or any other version.

Examples:
  packedit patch-rigidmodel unit.rigid_model_v2 -o unit_wh.rigid_model_v2`,
	Args: cobra.ExactArgs(1),
	RunE: runPatchRigidModel,
}

func init() {
	rootCmd.AddCommand(patchRigidModelCmd)

	patchRigidModelCmd.Flags().StringVarP(&rigidModelOutput, "output", "o", "",
		"output path (defaults to overwriting the input file)")
}

func runPatchRigidModel(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read model file: %w", err)
	}

	rm, err := rigidmodel.Decode(data)
	if err != nil {
		return err
	}

	if err := rigidmodel.PatchAttilaToWarhammer(rm); err != nil {
		return err
	}

	encoded, err := rigidmodel.Encode(rm)
	if err != nil {
		return err
	}

	out := rigidModelOutput
	if out == "" {
		out = args[0]
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}

	fmt.Printf("Patched %s to Warhammer (v7), %d Lod(s)\n", out, len(rm.Header.Lods))
	return nil
}
