// Package menu runs the numbered console menu of the tracker.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ecotrack/ecotrack/internal/display"
	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/session"
	"github.com/ecotrack/ecotrack/internal/style"
	"github.com/ecotrack/ecotrack/internal/user"
)

// Saver persists the registry on Save & Exit.
type Saver interface {
	Save(reg *user.Registry) error
}

// Menu drives a session from line-oriented input.
type Menu struct {
	sess  *session.Session
	saver Saver
	in    *bufio.Reader
	out   io.Writer

	topN     int
	detected string

	// interactive enables screen clearing and the key pause between commands.
	interactive bool
	pause       func()
}

// Option configures a Menu.
type Option func(*Menu)

// WithTopN sets how many users each ranking awards.
func WithTopN(n int) Option {
	return func(m *Menu) { m.topN = n }
}

// WithSuggestedName offers name when the startup prompt is answered with an empty line.
func WithSuggestedName(name string) Option {
	return func(m *Menu) { m.detected = name }
}

// New creates a menu. When in is a terminal the screen is cleared before each
// menu and a single key press returns from a command.
func New(sess *session.Session, saver Saver, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		sess:  sess,
		saver: saver,
		in:    bufio.NewReader(in),
		out:   out,
		topN:  user.DefaultTopN,
		pause: func() {},
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		m.interactive = true
		m.pause = keyPause(f)
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// errQuit ends the loop without saving when input is exhausted.
var errQuit = errors.New("input closed")

// Run asks for the starting user, then loops until Save & Exit succeeds or
// input ends. Running out of input exits without saving.
func (m *Menu) Run() error {
	if err := m.login(); err != nil {
		return m.finish(err)
	}

	for {
		m.showMenu()
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.finish(err)
		}

		done, err := m.dispatch(choice)
		if err != nil {
			return m.finish(err)
		}
		if done {
			return nil
		}

		m.println("\nPress any key to return to the main menu...")
		m.pause()
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errQuit) {
		logx.Warn("input closed, exiting without saving")
		return nil
	}
	return err
}

func (m *Menu) login() error {
	label := "Enter your name: "
	if m.detected != "" {
		label = fmt.Sprintf("Enter your name [%s]: ", m.detected)
	}

	name, err := m.prompt(label)
	if err != nil {
		return err
	}
	if name == "" {
		name = m.detected
	}

	u, created := m.sess.Login(name)
	if created {
		m.success(fmt.Sprintf("Welcome, %s! A new profile was created.", u.Username))
	} else {
		m.success(fmt.Sprintf("Welcome back, %s!", u.Username))
	}
	return nil
}

var mainOptions = []string{
	"Add Another User",
	"Log Health Activity",
	"Log Environmental Activity",
	"View All Users' Summaries",
	"Identify and Award Top Performers",
	"Switch Current User",
	"Save & Exit",
	"Delete User",
	"Search User",
}

func (m *Menu) showMenu() {
	if m.interactive {
		fmt.Fprint(m.out, "\033[H\033[2J")
	}
	m.println("\n" + style.Title.Render("--- Eco-Wellness Tracker Menu ---"))
	if u := m.sess.Current(); u != nil {
		m.println(style.Dim.Render("Current user: " + u.Username))
	}
	for i, opt := range mainOptions {
		m.println(fmt.Sprintf("[%d] %s", i+1, opt))
	}
}

// dispatch runs one top-level command and reports whether the session is over.
func (m *Menu) dispatch(choice string) (bool, error) {
	var err error
	switch choice {
	case "1":
		err = m.addUser()
	case "2":
		err = m.logHealth()
	case "3":
		err = m.logEco()
	case "4":
		display.Summaries(m.out, m.sess.Registry.All())
	case "5":
		m.awardTopPerformers()
	case "6":
		err = m.switchUser()
	case "7":
		return m.saveAndExit(), nil
	case "8":
		err = m.deleteUser()
	case "9":
		err = m.searchUser()
	default:
		m.fail("Invalid choice, please try again.")
	}
	return false, err
}

func (m *Menu) addUser() error {
	name, err := m.prompt("Enter new user's username: ")
	if err != nil {
		return err
	}

	if _, err := m.sess.AddUser(name); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			m.fail("User already exists.")
			return nil
		}
		m.fail(err.Error())
		return nil
	}
	m.success(fmt.Sprintf("%s added successfully.", name))
	return nil
}

func (m *Menu) logHealth() error {
	m.println("\n[1] Log Exercise")
	m.println("[2] Log Water Intake")
	m.println("[3] Log Sleep")
	option, err := m.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	var (
		activity session.HealthActivity
		label    string
		done     string
	)
	switch option {
	case "1":
		activity, label, done = session.Exercise, "Enter exercise minutes: ", "Exercise logged successfully!"
	case "2":
		activity, label, done = session.Water, "Enter water intake in liters: ", "Water intake logged successfully!"
	case "3":
		activity, label, done = session.Sleep, "Enter sleep hours: ", "Sleep logged successfully!"
	default:
		m.fail("Invalid choice.")
		return nil
	}

	input, err := m.prompt(label)
	if err != nil {
		return err
	}
	amount, err := user.ParseInt(activity.String(), input)
	if err != nil {
		m.invalidNumber(err)
		return nil
	}

	if err := m.sess.LogHealth(activity, amount); err != nil {
		m.reportLogError(err)
		return nil
	}
	m.success(done)
	return nil
}

func (m *Menu) logEco() error {
	m.println("\n[1] Log Plastic Reduction")
	m.println("[2] Log Carbon Reduction")
	option, err := m.prompt("Choose an option: ")
	if err != nil {
		return err
	}

	var (
		activity session.EcoActivity
		label    string
		done     string
	)
	switch option {
	case "1":
		activity, label, done = session.Plastic, "Enter plastic reduction in kg: ", "Plastic reduction logged successfully!"
	case "2":
		activity, label, done = session.Carbon, "Enter carbon reduction in kg: ", "Carbon reduction logged successfully!"
	default:
		m.fail("Invalid choice.")
		return nil
	}

	input, err := m.prompt(label)
	if err != nil {
		return err
	}
	amount, err := user.ParseFloat(activity.String(), input)
	if err != nil {
		m.invalidNumber(err)
		return nil
	}

	if err := m.sess.LogEco(activity, amount); err != nil {
		m.reportLogError(err)
		return nil
	}
	m.success(done)
	return nil
}

func (m *Menu) awardTopPerformers() {
	a := m.sess.AwardTopPerformers(m.topN)
	m.println("")
	display.Rankings(m.out, "health", "Health Score", a.Health)
	m.println("")
	display.Rankings(m.out, "eco", "Eco Score", a.Eco)
}

func (m *Menu) switchUser() error {
	name, err := m.prompt("Enter username to switch to: ")
	if err != nil {
		return err
	}

	if _, err := m.sess.Switch(name); err != nil {
		m.fail("User not found.")
		return nil
	}
	m.success(fmt.Sprintf("Switched to user: %s", name))
	return nil
}

func (m *Menu) deleteUser() error {
	name, err := m.prompt("Enter the username of the user to delete: ")
	if err != nil {
		return err
	}

	if _, err := m.sess.Delete(name); err != nil {
		m.fail("User not found.")
		return nil
	}
	m.success(fmt.Sprintf("%s has been deleted.", name))
	return nil
}

func (m *Menu) searchUser() error {
	query, err := m.prompt("Enter username to search: ")
	if err != nil {
		return err
	}

	u, err := m.sess.Search(query)
	if err != nil {
		m.fail("User not found.")
		return nil
	}
	m.println("")
	display.UserSummary(m.out, u)
	return nil
}

// saveAndExit reports whether the save succeeded; on failure the menu keeps running.
func (m *Menu) saveAndExit() bool {
	if err := m.saver.Save(m.sess.Registry); err != nil {
		logx.Error(err, "save failed")
		m.fail(fmt.Sprintf("Error saving data: %v", err))
		return false
	}
	m.success("User data saved successfully.")
	m.success("Thank you for using the Eco-Wellness Tracker!")
	return true
}

func (m *Menu) invalidNumber(err error) {
	logx.Debug("rejected amount", "error", err.Error())
	m.fail("Invalid input format. Please enter numeric values.")
}

func (m *Menu) reportLogError(err error) {
	switch {
	case errors.Is(err, session.ErrNoCurrentUser):
		m.fail("No current user. Switch to a user first.")
	case errors.Is(err, session.ErrCurrentUserDeleted):
		m.fail("The current user was deleted. Switch to another user first.")
	default:
		m.fail(err.Error())
	}
}

// prompt writes label and reads one line with the line ending removed.
// A final line without a newline is returned; errQuit follows it.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				m.println("")
				return "", errQuit
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) success(msg string) {
	m.println(style.Success.Render(msg))
}

func (m *Menu) fail(msg string) {
	m.println(style.Error.Render(msg))
}

// keyPause waits for a single key press on a terminal.
func keyPause(f *os.File) func() {
	return func() {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return
		}
		defer func() { _ = term.Restore(fd, state) }()

		var b [1]byte
		_, _ = f.Read(b[:])
	}
}
