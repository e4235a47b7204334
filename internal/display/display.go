// Package display renders users, metrics, badges and rankings for the console.
package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ecotrack/ecotrack/internal/style"
	"github.com/ecotrack/ecotrack/internal/user"
)

var summaryHeaders = []string{
	"Username", "Exercise (mins)", "Water Intake (L)", "Sleep (hrs)",
	"Plastic Reduction (kg)", "Carbon Reduction (kg)",
}

// Health writes a one-line description of health metrics.
func Health(w io.Writer, m user.HealthMetrics) {
	fmt.Fprintf(w, "Health Metrics: Exercise Minutes: %d, Water Intake: %dL, Sleep Hours: %d\n",
		m.ExerciseMinutes, m.WaterIntakeLiters, m.SleepHours)
}

// Environment writes a one-line description of environmental metrics.
func Environment(w io.Writer, m user.EnvironmentalMetrics) {
	fmt.Fprintf(w, "Environmental Metrics: Plastic Reduction: %skg, Carbon Reduction: %skg\n",
		kg(m.PlasticReductionKg), kg(m.CarbonReductionKg))
}

// Badge writes a one-line description of a badge.
func Badge(w io.Writer, b user.Badge) {
	fmt.Fprintf(w, "Badge: %s, Description: %s\n", b.Name, b.Description)
}

// Summaries writes a table of every user's metrics in registry order.
func Summaries(w io.Writer, users []*user.User) {
	fmt.Fprintln(w, style.Section.Render("--- All Users' Summaries ---"))

	t := newTable().Headers(summaryHeaders...)
	for _, u := range users {
		t.Row(
			u.Username,
			strconv.Itoa(u.Health.ExerciseMinutes),
			strconv.Itoa(u.Health.WaterIntakeLiters),
			strconv.Itoa(u.Health.SleepHours),
			fmt.Sprintf("%.1f", u.Environment.PlasticReductionKg),
			fmt.Sprintf("%.1f", u.Environment.CarbonReductionKg),
		)
	}
	fmt.Fprintln(w, t.Render())
}

// UserSummary writes one user's metrics, computed scores and badges.
func UserSummary(w io.Writer, u *user.User) {
	fmt.Fprintln(w, style.Success.Render("--- User Summary ---"))

	headers := append(append([]string(nil), summaryHeaders...), "Health Score", "Eco Score")
	t := newTable().Headers(headers...).Row(
		u.Username,
		strconv.Itoa(u.Health.ExerciseMinutes),
		strconv.Itoa(u.Health.WaterIntakeLiters),
		strconv.Itoa(u.Health.SleepHours),
		kg(u.Environment.PlasticReductionKg),
		kg(u.Environment.CarbonReductionKg),
		strconv.Itoa(u.HealthScore()),
		strconv.Itoa(u.EcoScore()),
	)
	fmt.Fprintln(w, t.Render())

	for _, b := range u.Badges {
		Badge(w, b)
	}
}

// Rankings writes a ranking table. An empty ranking writes a not-found line
// naming the kind of performer.
func Rankings(w io.Writer, kind, scoreLabel string, rs []user.Ranking) {
	if len(rs) == 0 {
		fmt.Fprintln(w, style.Error.Render(fmt.Sprintf("No top %s performers found.", kind)))
		return
	}

	fmt.Fprintln(w, style.Heading.Render(fmt.Sprintf("--- Top %s Performers ---", cases.Title(language.English).String(kind))))

	t := newTable().
		Headers("Rank", "Username", scoreLabel).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row != table.HeaderRow && col == 1 {
				return s.Inherit(style.Name)
			}
			return s
		})
	for _, r := range rs {
		t.Row(strconv.Itoa(r.Rank), r.User.Username, strconv.Itoa(r.Score))
	}
	fmt.Fprintln(w, t.Render())
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// kg formats a quantity with the shortest exact representation.
func kg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
