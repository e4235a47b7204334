package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	GroupID: GroupTrack,
	Short:   "Browse all users in a scrollable table",
	Long: `Open a full-screen, read-only table of every user with their metrics,
scores and badge count. Press q to leave.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	_, sess, err := openSession()
	if err != nil {
		return err
	}
	return browse.Run(sess.Registry.All(), cfg.DataFile)
}
