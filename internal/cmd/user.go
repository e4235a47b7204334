package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecotrack/ecotrack/internal/display"
	"github.com/ecotrack/ecotrack/internal/style"
	"github.com/ecotrack/ecotrack/internal/user"
)

var userCmd = &cobra.Command{
	Use:     "user",
	GroupID: GroupUsers,
	Short:   "Manage tracked users",
	Long: `Manage the users in the users file.

Exact username matches are used everywhere except 'search', which
ignores case.

Examples:
  ecotrack user list              # Show all users
  ecotrack user whoami            # Show current user
  ecotrack user add alice         # Add a new user
  ecotrack user switch bob        # Switch to another user
  ecotrack user search ALICE      # Case-insensitive lookup
  ecotrack user remove bob        # Delete a user`,
	RunE: requireSubcommand,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all users",
	Long: `List every user in file order with their metrics.

The current user is marked with an asterisk (*).`,
	Args: cobra.NoArgs,
	RunE: runUserList,
}

var userWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current user identity",
	Long: `Show the user that one-shot logging commands apply to.

The current user is determined by:
1. ECOTRACK_USER environment variable
2. ~/.ecotrack-current-user file (written by 'ecotrack user switch')`,
	Args: cobra.NoArgs,
	RunE: runUserWhoami,
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a new user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

var userRemoveCmd = &cobra.Command{
	Use:     "remove <username>",
	Aliases: []string{"delete", "rm"},
	Short:   "Delete a user",
	Long: `Delete a user by exact username.

Removing the current user does not change the remembered current user;
logging fails until you switch to another user.`,
	Args: cobra.ExactArgs(1),
	RunE: runUserRemove,
}

var userSearchCmd = &cobra.Command{
	Use:   "search <username>",
	Short: "Show a user's metrics and scores (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserSearch,
}

var userSwitchCmd = &cobra.Command{
	Use:   "switch <username>",
	Short: "Switch to a different user",
	Long: `Switch the current user for one-shot commands.

The username must match exactly. The choice is saved to
~/.ecotrack-current-user.

Example:
  ecotrack user switch alice`,
	Args: cobra.ExactArgs(1),
	RunE: runUserSwitch,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userWhoamiCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userRemoveCmd)
	userCmd.AddCommand(userSearchCmd)
	userCmd.AddCommand(userSwitchCmd)
}

func runUserList(cmd *cobra.Command, args []string) error {
	_, sess, err := openSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	users := sess.Registry.All()
	if len(users) == 0 {
		fmt.Fprintln(out, "No users registered. Run 'ecotrack user add <username>' to add the first user.")
		return nil
	}

	currentUser, _ := user.GetCurrentUser()

	fmt.Fprintf(out, "Users in %s:\n", cfg.DataFile)
	for _, u := range users {
		marker := "  "
		if u.Username == currentUser {
			marker = "* "
		}
		fmt.Fprintf(out, "  %s%s %s\n", marker, u.Username,
			style.Dim.Render(fmt.Sprintf("(health %d, eco %d)", u.HealthScore(), u.EcoScore())))
	}
	return nil
}

func runUserWhoami(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	currentUser, err := user.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("getting current user: %w", err)
	}

	if currentUser == "" {
		fmt.Fprintln(out, style.Dim.Render("No user set."))
		fmt.Fprintf(out, "Run 'ecotrack user switch <username>', or set %s.\n", user.EnvVarUser)
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", style.Bold.Render("Current user:"), currentUser)

	_, sess, err := openSession()
	if err != nil {
		return nil
	}
	u, err := sess.Registry.Get(currentUser)
	if err != nil {
		fmt.Fprintf(out, "  %s\n", style.Error.Render("not in "+cfg.DataFile))
		return nil
	}
	fmt.Fprintf(out, "  Health score: %d\n", u.HealthScore())
	fmt.Fprintf(out, "  Eco score:    %d\n", u.EcoScore())
	return nil
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	username := args[0]
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	s, sess, err := openSession()
	if err != nil {
		return err
	}

	if _, err := sess.AddUser(username); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			return fmt.Errorf("user '%s' already exists", username)
		}
		return err
	}
	if err := s.Save(sess.Registry); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Added user '%s'\n", style.SuccessPrefix, username)

	// The first user becomes current.
	if sess.Registry.Len() == 1 {
		if err := user.SetCurrentUser(username); err == nil {
			fmt.Fprintf(out, "%s Set as current user\n", style.SuccessPrefix)
		}
	}
	return nil
}

func runUserRemove(cmd *cobra.Command, args []string) error {
	username := args[0]

	s, sess, err := openSession()
	if err != nil {
		return err
	}

	if _, err := sess.Delete(username); err != nil {
		return fmt.Errorf("user '%s' not found. Run 'ecotrack user list' to see available users", username)
	}
	if err := s.Save(sess.Registry); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s has been deleted.\n", style.SuccessPrefix, username)
	return nil
}

func runUserSearch(cmd *cobra.Command, args []string) error {
	_, sess, err := openSession()
	if err != nil {
		return err
	}

	u, err := sess.Search(args[0])
	if err != nil {
		return fmt.Errorf("user '%s' not found", args[0])
	}
	display.UserSummary(cmd.OutOrStdout(), u)
	return nil
}

func runUserSwitch(cmd *cobra.Command, args []string) error {
	username := args[0]

	_, sess, err := openSession()
	if err != nil {
		return err
	}

	if _, err := sess.Switch(username); err != nil {
		return fmt.Errorf("user '%s' not found. Run 'ecotrack user list' to see available users", username)
	}

	if err := user.SetCurrentUser(username); err != nil {
		return fmt.Errorf("switching user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Switched to user: %s\n", style.SuccessPrefix, username)
	return nil
}
