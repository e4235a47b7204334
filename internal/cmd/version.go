package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ecotrack version",
	Args:  cobra.NoArgs,
	// Skip config loading so a broken config file does not hide the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ecotrack %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
