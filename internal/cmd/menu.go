package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/menu"
	"github.com/ecotrack/ecotrack/internal/session"
	"github.com/ecotrack/ecotrack/internal/style"
	"github.com/ecotrack/ecotrack/internal/user"
)

var runCmd = &cobra.Command{
	Use:     "run",
	GroupID: GroupTrack,
	Short:   "Open the interactive menu",
	Long: `Open the numbered interactive menu.

The users file is loaded at start and written back on "Save & Exit".
Only one interactive session may use a users file at a time.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	s := cfg.Store()

	lock, err := s.TryLock()
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logx.Error(err, "releasing session lock")
		}
	}()

	// A malformed file is reported but does not stop the session; the
	// users read before the bad line stay available.
	reg, err := s.Load()
	if err != nil {
		fmt.Println(style.Error.Render(fmt.Sprintf("Error loading data: %v", err)))
	}

	m := menu.New(session.New(reg), s, os.Stdin, os.Stdout,
		menu.WithTopN(cfg.TopN),
		menu.WithSuggestedName(user.DetectUsername()),
	)
	return m.Run()
}
