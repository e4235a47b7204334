package cmd

import (
	"errors"
	"fmt"

	"github.com/ecotrack/ecotrack/internal/session"
	"github.com/ecotrack/ecotrack/internal/store"
	"github.com/ecotrack/ecotrack/internal/user"
)

// openSession loads the users file into a new session. One-shot commands
// refuse to work on a partially loaded file since saving would drop the
// unread records.
func openSession() (*store.Store, *session.Session, error) {
	s := cfg.Store()
	reg, err := s.Load()
	if err != nil {
		var fe *user.FormatError
		if errors.As(err, &fe) {
			return nil, nil, fmt.Errorf("%s: %w (run 'ecotrack doctor')", s.Path(), err)
		}
		return nil, nil, err
	}
	return s, session.New(reg), nil
}

// openCurrentSession is openSession with the remembered current user selected.
func openCurrentSession() (*store.Store, *session.Session, error) {
	s, sess, err := openSession()
	if err != nil {
		return nil, nil, err
	}

	name, err := user.GetCurrentUser()
	if err != nil {
		return nil, nil, fmt.Errorf("getting current user: %w", err)
	}
	if name == "" {
		return nil, nil, fmt.Errorf("%w: run 'ecotrack user switch <username>' or set %s", session.ErrNoCurrentUser, user.EnvVarUser)
	}
	if _, err := sess.Switch(name); err != nil {
		return nil, nil, fmt.Errorf("current user '%s' not found. Run 'ecotrack user list' to see available users", name)
	}
	return s, sess, nil
}
