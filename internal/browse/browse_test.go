package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/ecotrack/internal/user"
)

func users() []*user.User {
	a := user.New("alice")
	a.Health = user.HealthMetrics{ExerciseMinutes: 30, WaterIntakeLiters: 2, SleepHours: 8}
	a.Environment = user.EnvironmentalMetrics{PlasticReductionKg: 2.7, CarbonReductionKg: 1.2}
	a.AwardBadge(user.HealthChampion, user.HealthChampionDescription)
	return []*user.User{a, user.New("bob")}
}

func TestRows(t *testing.T) {
	rows := Rows(users())
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"alice", "30", "2", "8", "2.7", "1.2", "90", "40", "1"}, []string(rows[0]))
	assert.Equal(t, "bob", rows[1][0])
	assert.Len(t, rows[0], len(Columns()))
}

func TestModel_Navigation(t *testing.T) {
	m := New(users(), "users.txt")
	assert.Equal(t, "alice", m.SelectedUsername())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, "bob", m.SelectedUsername())
}

func TestModel_Quit(t *testing.T) {
	m := New(users(), "users.txt")

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), key.String())
	}
}

func TestModel_View(t *testing.T) {
	view := New(users(), "users.txt").View()

	assert.Contains(t, view, "2 users in users.txt")
	assert.Contains(t, view, "Username")
	assert.True(t, strings.Contains(view, "alice") && strings.Contains(view, "bob"))
}

func TestModel_Empty(t *testing.T) {
	m := New(nil, "users.txt")
	assert.Equal(t, "", m.SelectedUsername())
	assert.Contains(t, m.View(), "0 users")
}
