// Package cmd implements the ecotrack command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/config"
	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/style"
)

// Command groups shown in help output.
const (
	GroupTrack = "track"
	GroupUsers = "users"
	GroupData  = "data"
)

// Version is set at build time.
var Version = "dev"

var (
	configPath string
	dataFlag   string
	logLevel   string

	// cfg is resolved in PersistentPreRunE before any command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ecotrack",
	Short: "Track health and environmental activity per user",
	Long: `ecotrack tracks exercise, water intake and sleep alongside plastic and
carbon reductions for every user, scores them, and awards badges to the top
performers.

Run without a subcommand to open the interactive menu. The one-shot
subcommands load the users file, apply one change and save it again.

Examples:
  ecotrack                             # Interactive menu
  ecotrack user add alice              # Register a user
  ecotrack user switch alice           # Make alice the current user
  ecotrack log health --exercise 30    # Log activity for the current user
  ecotrack top                         # Show and award top performers`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runMenu,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTrack, Title: "Tracking:"},
		&cobra.Group{ID: GroupUsers, Title: "Users:"},
		&cobra.Group{ID: GroupData, Title: "Data:"},
	)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "Users file (overrides config and "+config.EnvVarData+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			return silent.Code
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		return 1
	}
	return 0
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dataFlag != "" {
		c.DataFile = dataFlag
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}

	logx.Init(c.LogLevel, nil)
	logx.Debug("config loaded", "data_file", c.DataFile, "atomic_save", c.AtomicSave, "top_n", c.TopN)

	cfg = c
	return nil
}

// requireSubcommand is the RunE of parent commands that do nothing on their own.
func requireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
}

// SilentExitError ends the process with Code and no message.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// NewSilentExit returns an error that exits with code without printing.
func NewSilentExit(code int) error {
	return &SilentExitError{Code: code}
}
