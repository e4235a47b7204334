package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/display"
	"github.com/ecotrack/ecotrack/internal/style"
)

var topCmd = &cobra.Command{
	Use:     "top",
	GroupID: GroupTrack,
	Short:   "Identify and award top performers",
	Long: `Rank users by health score and by eco score and award the top
performers a "Health Champion" or "Eco Champion" badge.

Badges are not stored in the users file, so they only appear in this
command's output.`,
	Args: cobra.NoArgs,
	RunE: runTop,
}

var topN int

func init() {
	topCmd.Flags().IntVarP(&topN, "number", "n", 0, "How many users to rank (default from config, 3)")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	_, sess, err := openSession()
	if err != nil {
		return err
	}

	n := cfg.TopN
	if cmd.Flags().Changed("number") {
		if topN < 0 {
			return fmt.Errorf("--number must not be negative")
		}
		n = topN
	}

	out := cmd.OutOrStdout()
	awards := sess.AwardTopPerformers(n)
	display.Rankings(out, "health", "Health Score", awards.Health)
	fmt.Fprintln(out)
	display.Rankings(out, "eco", "Eco Score", awards.Eco)

	awarded := len(awards.Health) + len(awards.Eco)
	if awarded > 0 {
		fmt.Fprintf(out, "\n%s Awarded %d badges\n", style.SuccessPrefix, awarded)
	}
	return nil
}
