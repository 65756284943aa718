package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "packedit",
	Short: "Tools for Total War PackFile archives",
	Long: `packedit provides utilities for working with Total War PackFile archives.

Supported operations:
  - Open, inspect, and save PFH5/PFH4/PFH3/PFH0 archives
  - Add, delete, rename, extract, and merge packed files
  - Patch SiegeAI map blobs and RigidModel headers`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
