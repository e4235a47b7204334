package user

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvVarUser is the environment variable naming the active user for one-shot commands.
const EnvVarUser = "ECOTRACK_USER"

// CurrentUserFileName is the file in the home directory that remembers the active user.
const CurrentUserFileName = ".ecotrack-current-user"

// GetCurrentUser returns the username remembered for one-shot commands.
// Priority order:
//  1. ECOTRACK_USER environment variable
//  2. ~/.ecotrack-current-user file
//
// Returns ("", nil) if nothing is set.
func GetCurrentUser() (string, error) {
	if name := os.Getenv(EnvVarUser); name != "" {
		return name, nil
	}

	name, err := loadCurrentUserFile()
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// SetCurrentUser remembers username for later one-shot commands.
func SetCurrentUser(username string) error {
	path := currentUserFilePath()
	if path == "" {
		return fmt.Errorf("cannot determine home directory")
	}

	return os.WriteFile(path, []byte(username+"\n"), 0644) //nolint:gosec // G306: not secret
}

func currentUserFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, CurrentUserFileName)
}

func loadCurrentUserFile() (string, error) {
	path := currentUserFilePath()
	if path == "" {
		return "", fmt.Errorf("cannot determine home directory")
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path from user home
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
