package user

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/cases"
)

var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates a user with that username already exists.
	ErrUserExists = errors.New("user already exists")
)

// DefaultTopN is how many users each ranking selects by default.
const DefaultTopN = 3

// Registry is the ordered, in-memory collection of known users.
// Usernames are unique when users arrive through Add; Append does not check.
type Registry struct {
	users []*User
}

// NewRegistry creates a registry holding the given users in order.
func NewRegistry(users ...*User) *Registry {
	return &Registry{users: append([]*User(nil), users...)}
}

// Len returns the number of users.
func (r *Registry) Len() int {
	return len(r.users)
}

// All returns the users in insertion order. The slice is a copy; the users are not.
func (r *Registry) All() []*User {
	return append([]*User(nil), r.users...)
}

// Append adds u without checking for duplicates. Used when loading records.
func (r *Registry) Append(u *User) {
	r.users = append(r.users, u)
}

// Add adds u to the registry. Returns ErrUserExists if the username is taken.
func (r *Registry) Add(u *User) error {
	if _, err := r.Get(u.Username); err == nil {
		return fmt.Errorf("%w: %s", ErrUserExists, u.Username)
	}
	r.users = append(r.users, u)
	return nil
}

// Get returns the first user whose username matches exactly.
func (r *Registry) Get(username string) (*User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
}

// Search returns the first user whose username matches query ignoring case.
func (r *Registry) Search(query string) (*User, error) {
	fold := cases.Fold()
	want := fold.String(query)
	for _, u := range r.users {
		if fold.String(u.Username) == want {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, query)
}

// Contains reports whether u itself (not just its username) is in the registry.
func (r *Registry) Contains(u *User) bool {
	for _, existing := range r.users {
		if existing == u {
			return true
		}
	}
	return false
}

// Remove removes u from the registry.
func (r *Registry) Remove(u *User) error {
	for i, existing := range r.users {
		if existing == u {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUserNotFound, u.Username)
}

// Ranking is one entry of a top performer list.
type Ranking struct {
	Rank  int
	User  *User
	Score int
}

// TopHealth selects the n users with the highest health score and awards each
// a Health Champion badge. Every call awards again.
func (r *Registry) TopHealth(n int) []Ranking {
	return r.top(n, (*User).HealthScore, HealthChampion, HealthChampionDescription)
}

// TopEco selects the n users with the highest eco score and awards each an
// Eco Champion badge. Every call awards again.
func (r *Registry) TopEco(n int) []Ranking {
	return r.top(n, (*User).EcoScore, EcoChampion, EcoChampionDescription)
}

// top ranks by score descending; ties keep registry order.
func (r *Registry) top(n int, score func(*User) int, badge, description string) []Ranking {
	sorted := r.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return score(sorted[i]) > score(sorted[j])
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}

	rankings := make([]Ranking, 0, len(sorted))
	for i, u := range sorted {
		u.AwardBadge(badge, description)
		rankings = append(rankings, Ranking{Rank: i + 1, User: u, Score: score(u)})
	}
	return rankings
}
