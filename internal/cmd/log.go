package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/session"
	"github.com/ecotrack/ecotrack/internal/style"
)

var logCmd = &cobra.Command{
	Use:     "log",
	GroupID: GroupTrack,
	Short:   "Log activity for the current user",
	Long: `Add logged activity to the current user's totals.

Amounts accumulate; nothing is ever reset. Negative amounts are accepted
and subtract.

Examples:
  ecotrack log health --exercise 30 --water 2
  ecotrack log eco --plastic 0.5`,
	RunE: requireSubcommand,
}

var logHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Log exercise minutes, water liters or sleep hours",
	Args:  cobra.NoArgs,
	RunE:  runLogHealth,
}

var logEcoCmd = &cobra.Command{
	Use:   "eco",
	Short: "Log plastic or carbon reduction in kg",
	Args:  cobra.NoArgs,
	RunE:  runLogEco,
}

var (
	logExercise int
	logWater    int
	logSleep    int
	logPlastic  float64
	logCarbon   float64
)

func init() {
	logHealthCmd.Flags().IntVar(&logExercise, "exercise", 0, "Exercise minutes")
	logHealthCmd.Flags().IntVar(&logWater, "water", 0, "Water intake in liters")
	logHealthCmd.Flags().IntVar(&logSleep, "sleep", 0, "Sleep hours")
	logHealthCmd.MarkFlagsOneRequired("exercise", "water", "sleep")

	logEcoCmd.Flags().Float64Var(&logPlastic, "plastic", 0, "Plastic reduction in kg")
	logEcoCmd.Flags().Float64Var(&logCarbon, "carbon", 0, "Carbon reduction in kg")
	logEcoCmd.MarkFlagsOneRequired("plastic", "carbon")

	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logHealthCmd)
	logCmd.AddCommand(logEcoCmd)
}

func runLogHealth(cmd *cobra.Command, args []string) error {
	s, sess, err := openCurrentSession()
	if err != nil {
		return err
	}

	entries := []struct {
		flag     string
		activity session.HealthActivity
		amount   int
	}{
		{"exercise", session.Exercise, logExercise},
		{"water", session.Water, logWater},
		{"sleep", session.Sleep, logSleep},
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		if !cmd.Flags().Changed(e.flag) {
			continue
		}
		if err := sess.LogHealth(e.activity, e.amount); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Logged %d %s\n", style.SuccessPrefix, e.amount, e.activity)
	}

	if err := s.Save(sess.Registry); err != nil {
		return err
	}
	u := sess.Current()
	fmt.Fprintf(out, "%s health score: %d\n", u.Username, u.HealthScore())
	return nil
}

func runLogEco(cmd *cobra.Command, args []string) error {
	s, sess, err := openCurrentSession()
	if err != nil {
		return err
	}

	entries := []struct {
		flag     string
		activity session.EcoActivity
		amount   float64
	}{
		{"plastic", session.Plastic, logPlastic},
		{"carbon", session.Carbon, logCarbon},
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		if !cmd.Flags().Changed(e.flag) {
			continue
		}
		if err := sess.LogEco(e.activity, e.amount); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Logged %gkg %s\n", style.SuccessPrefix, e.amount, e.activity)
	}

	if err := s.Save(sess.Registry); err != nil {
		return err
	}
	u := sess.Current()
	fmt.Fprintf(out, "%s eco score: %d\n", u.Username, u.EcoScore())
	return nil
}
