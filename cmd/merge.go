package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wismer/packedit/pkg/packfile"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <src.pack> <src-path> <dst.pack> <dst-path>",
	Short: "Copy a file, folder, or whole archive across archives",
	Long: `Merge copies a file, folder, or whole archive from src.pack at
src-path into dst.pack at dst-path. dst-path must classify as a folder or
the destination archive's own root. A collision at the destination aborts
the whole merge, leaving dst.pack unchanged on disk. Saves dst.pack back
to disk on success.

Examples:
  packedit merge other.pack ui mymod.pack ui`,
	Args: cobra.ExactArgs(4),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	src, err := packfile.Open(args[0])
	if err != nil {
		return err
	}
	dst, err := packfile.Open(args[2])
	if err != nil {
		return err
	}

	srcPath := strings.Split(args[1], "/")
	dstPath := strings.Split(args[3], "/")

	if err := packfile.Merge(src, srcPath, dst, dstPath); err != nil {
		return err
	}

	if err := packfile.Save(dst, ""); err != nil {
		return err
	}

	fmt.Printf("Merged %s:%s into %s:%s\n", args[0], args[1], args[2], args[3])
	return nil
}
