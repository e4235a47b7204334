package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/doctor"
	"github.com/ecotrack/ecotrack/internal/style"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	GroupID: GroupData,
	Short:   "Check the users file for problems",
	Long: `Run health checks against the users file:

  data-file         every record parses (a bad line stops loading)
  duplicate-users   no username is stored twice
  stale-temp-files  no temp files are left from interrupted saves

With --fix, malformed records are moved to <file>.rejected and stale temp
files are removed. Exits 1 when an error remains.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Repair problems that can be fixed automatically")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := &doctor.CheckContext{DataFile: cfg.DataFile}

	if doctorFix {
		lock, err := cfg.Store().TryLock()
		if err != nil {
			return err
		}
		defer lock.Unlock() //nolint:errcheck // released on exit anyway
	}

	report, err := doctor.New().Run(ctx, doctorFix)
	out := cmd.OutOrStdout()
	report.Print(out)
	if err != nil {
		return err
	}

	switch report.Worst() {
	case doctor.StatusError:
		return NewSilentExit(1)
	case doctor.StatusWarning:
		fmt.Fprintf(out, "\n%s Finished with warnings\n", style.WarningPrefix)
	default:
		fmt.Fprintf(out, "\n%s %s looks healthy\n", style.SuccessPrefix, cfg.DataFile)
	}
	return nil
}
