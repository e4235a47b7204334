// Package session holds the state of one tracker session: the user registry
// and the pointer to the active user. Every command of the console menu and
// the one-shot CLI goes through a Session.
package session

import (
	"errors"
	"fmt"

	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/user"
)

var (
	// ErrNoCurrentUser indicates a logging command ran with no active user.
	ErrNoCurrentUser = errors.New("no current user")

	// ErrCurrentUserDeleted indicates the active user was deleted from the registry.
	ErrCurrentUserDeleted = errors.New("current user was deleted")

	// ErrUnknownActivity indicates an activity kind that cannot be logged.
	ErrUnknownActivity = errors.New("unknown activity")
)

// HealthActivity selects which health metric a log entry adds to.
type HealthActivity int

const (
	Exercise HealthActivity = iota + 1
	Water
	Sleep
)

func (a HealthActivity) String() string {
	switch a {
	case Exercise:
		return "exercise"
	case Water:
		return "water intake"
	case Sleep:
		return "sleep"
	default:
		return fmt.Sprintf("health activity %d", int(a))
	}
}

// EcoActivity selects which environmental metric a log entry adds to.
type EcoActivity int

const (
	Plastic EcoActivity = iota + 1
	Carbon
)

func (a EcoActivity) String() string {
	switch a {
	case Plastic:
		return "plastic reduction"
	case Carbon:
		return "carbon reduction"
	default:
		return fmt.Sprintf("eco activity %d", int(a))
	}
}

// Session is the mutable state of one run.
type Session struct {
	Registry *user.Registry

	current *user.User
}

// New creates a session over reg with no current user.
func New(reg *user.Registry) *Session {
	if reg == nil {
		reg = user.NewRegistry()
	}
	return &Session{Registry: reg}
}

// Current returns the active user, or nil. The user may have been deleted
// from the registry since it was selected.
func (s *Session) Current() *user.User {
	return s.current
}

// Login makes the user with the exact username current, creating and adding
// it if it does not exist. Reports whether the user was created.
func (s *Session) Login(username string) (*user.User, bool) {
	if u, err := s.Registry.Get(username); err == nil {
		s.current = u
		return u, false
	}

	u := user.New(username)
	s.Registry.Append(u)
	s.current = u
	logx.Debug("created user at login", "user", username)
	return u, true
}

// AddUser adds a new user. Returns user.ErrUserExists when the username is taken;
// the registry is unchanged in that case. The current user does not change.
func (s *Session) AddUser(username string) (*user.User, error) {
	u := user.New(username)
	if err := s.Registry.Add(u); err != nil {
		return nil, err
	}
	logx.Debug("added user", "user", username)
	return u, nil
}

// Switch makes the user with the exact username current. On a miss the
// current user is left unchanged and user.ErrUserNotFound is returned.
func (s *Session) Switch(username string) (*user.User, error) {
	u, err := s.Registry.Get(username)
	if err != nil {
		return nil, err
	}
	s.current = u
	return u, nil
}

// Delete removes the user with the exact username. The current user pointer is
// not cleared when it refers to the deleted user; logging then fails with
// ErrCurrentUserDeleted.
func (s *Session) Delete(username string) (*user.User, error) {
	u, err := s.Registry.Get(username)
	if err != nil {
		return nil, err
	}
	if err := s.Registry.Remove(u); err != nil {
		return nil, err
	}
	logx.Debug("deleted user", "user", username, "was_current", u == s.current)
	return u, nil
}

// Search finds a user by username ignoring case.
func (s *Session) Search(query string) (*user.User, error) {
	return s.Registry.Search(query)
}

// LogHealth adds amount to a health metric of the current user.
func (s *Session) LogHealth(activity HealthActivity, amount int) error {
	u, err := s.active()
	if err != nil {
		return err
	}

	switch activity {
	case Exercise:
		u.Health.AddExercise(amount)
	case Water:
		u.Health.AddWater(amount)
	case Sleep:
		u.Health.AddSleep(amount)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownActivity, activity)
	}

	logx.Debug("logged health activity", "user", u.Username, "activity", activity.String(), "amount", amount)
	return nil
}

// LogEco adds amount to an environmental metric of the current user.
func (s *Session) LogEco(activity EcoActivity, amount float64) error {
	u, err := s.active()
	if err != nil {
		return err
	}

	switch activity {
	case Plastic:
		u.Environment.AddPlastic(amount)
	case Carbon:
		u.Environment.AddCarbon(amount)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownActivity, activity)
	}

	logx.Debug("logged eco activity", "user", u.Username, "activity", activity.String(), "amount", amount)
	return nil
}

// Awards holds the result of one top performer round.
type Awards struct {
	Health []user.Ranking
	Eco    []user.Ranking
}

// AwardTopPerformers ranks the top n users by health and by eco score and
// awards the matching champion badge to each. Every call awards again.
func (s *Session) AwardTopPerformers(n int) Awards {
	a := Awards{
		Health: s.Registry.TopHealth(n),
		Eco:    s.Registry.TopEco(n),
	}
	logx.Debug("awarded top performers", "health", len(a.Health), "eco", len(a.Eco))
	return a
}

func (s *Session) active() (*user.User, error) {
	if s.current == nil {
		return nil, ErrNoCurrentUser
	}
	if !s.Registry.Contains(s.current) {
		return nil, fmt.Errorf("%w: %s", ErrCurrentUserDeleted, s.current.Username)
	}
	return s.current, nil
}
