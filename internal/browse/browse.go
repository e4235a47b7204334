// Package browse is a read-only terminal table of every tracked user.
package browse

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotrack/ecotrack/internal/user"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	frameStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8"))
)

// Columns returns the table columns in display order.
func Columns() []table.Column {
	return []table.Column{
		{Title: "Username", Width: 16},
		{Title: "Exercise", Width: 9},
		{Title: "Water (L)", Width: 9},
		{Title: "Sleep", Width: 6},
		{Title: "Plastic (kg)", Width: 12},
		{Title: "Carbon (kg)", Width: 12},
		{Title: "Health", Width: 7},
		{Title: "Eco", Width: 6},
		{Title: "Badges", Width: 6},
	}
}

// Rows converts users to table rows in registry order.
func Rows(users []*user.User) []table.Row {
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{
			u.Username,
			strconv.Itoa(u.Health.ExerciseMinutes),
			strconv.Itoa(u.Health.WaterIntakeLiters),
			strconv.Itoa(u.Health.SleepHours),
			fmt.Sprintf("%.1f", u.Environment.PlasticReductionKg),
			fmt.Sprintf("%.1f", u.Environment.CarbonReductionKg),
			strconv.Itoa(u.HealthScore()),
			strconv.Itoa(u.EcoScore()),
			strconv.Itoa(len(u.Badges)),
		})
	}
	return rows
}

// Model is the bubbletea model of the browser.
type Model struct {
	table  table.Model
	source string
	count  int
}

// New builds the browser over users; source names where they were loaded from.
func New(users []*user.User, source string) Model {
	t := table.New(
		table.WithColumns(Columns()),
		table.WithRows(Rows(users)),
		table.WithFocused(true),
		table.WithHeight(min(len(users)+3, 18)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22"))
	t.SetStyles(s)

	return Model{table: t, source: source, count: len(users)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - 6; h > 0 {
			m.table.SetHeight(min(h, m.count+3))
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("Eco-Wellness Tracker: %d users in %s", m.count, m.source))
	footer := footerStyle.Render("↑/↓ move • q quit")
	return title + "\n" + frameStyle.Render(m.table.View()) + "\n" + footer + "\n"
}

// SelectedUsername returns the username on the highlighted row, or "".
func (m Model) SelectedUsername() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// Run opens the browser on the terminal and blocks until the user quits.
func Run(users []*user.User, source string) error {
	_, err := tea.NewProgram(New(users, source), tea.WithAltScreen()).Run()
	return err
}
