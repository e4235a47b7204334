// Package store persists the user registry to a flat text file, one record per line.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/user"
)

// DefaultPath is the data file used when nothing else is configured.
const DefaultPath = "users.txt"

// Store reads and writes the users file.
type Store struct {
	path string

	// Atomic makes Save write a temp file and rename it over the data file
	// instead of truncating in place.
	Atomic bool
}

// New creates a Store for the file at path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every record in the file. A missing file yields an empty registry.
// Blank lines are skipped. The first malformed line stops the load: the
// returned registry holds the users read before it and the error is a
// *user.FormatError carrying the line number.
func (s *Store) Load() (*user.Registry, error) {
	reg := user.NewRegistry()

	f, err := os.Open(s.path) //nolint:gosec // G304: path is the configured data file
	if err != nil {
		if os.IsNotExist(err) {
			logx.Debug("no users file, starting empty", "path", s.path)
			return reg, nil
		}
		return reg, fmt.Errorf("reading users file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		u, err := user.ParseRecord(line)
		if err != nil {
			var fe *user.FormatError
			if errors.As(err, &fe) {
				fe.Line = lineNo
			}
			logx.Error(err, "aborting load", "path", s.path, "loaded", reg.Len())
			return reg, err
		}
		reg.Append(u)
	}
	if err := scanner.Err(); err != nil {
		return reg, fmt.Errorf("reading users file: %w", err)
	}

	logx.Debug("loaded users", "path", s.path, "count", reg.Len())
	return reg, nil
}

// Save replaces the file contents with one record per user in registry order.
func (s *Store) Save(reg *user.Registry) error {
	var b strings.Builder
	for _, u := range reg.All() {
		b.WriteString(u.MarshalRecord())
		b.WriteByte('\n')
	}

	var err error
	if s.Atomic {
		err = s.writeAtomic([]byte(b.String()))
	} else {
		err = os.WriteFile(s.path, []byte(b.String()), 0644) //nolint:gosec // G306: not secret
	}
	if err != nil {
		return fmt.Errorf("writing users file: %w", err)
	}

	logx.Debug("saved users", "path", s.path, "count", reg.Len(), "atomic", s.Atomic)
	return nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil { //nolint:gosec // G302: not secret
		return err
	}
	return os.Rename(tmpName, s.path)
}
