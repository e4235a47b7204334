package user

import (
	"os"
	"os/exec"
	"strings"
)

// DetectUsername suggests a username for the startup prompt.
// Priority order:
//  1. Git config user.email local part, else user.name
//  2. $USER
//  3. whoami
//
// Returns "" if nothing is found.
func DetectUsername() string {
	if name := detectFromGitConfig(); name != "" {
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return detectFromWhoami()
}

func detectFromGitConfig() string {
	nameOut, err := exec.Command("git", "config", "user.name").Output()
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(string(nameOut))
	if name == "" {
		return ""
	}

	var email string
	if emailOut, err := exec.Command("git", "config", "user.email").Output(); err == nil {
		email = strings.TrimSpace(string(emailOut))
	}

	return deriveUsername(name, email)
}

func detectFromWhoami() string {
	out, err := exec.Command("whoami").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// deriveUsername generates a username from a name and email.
// If email is provided, uses the local part. Otherwise lowercases and
// hyphenates the name.
func deriveUsername(name, email string) string {
	if email != "" {
		if idx := strings.Index(email, "@"); idx > 0 {
			return strings.ToLower(email[:idx])
		}
	}

	lower := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	var cleaned strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			cleaned.WriteRune(r)
		}
	}
	return cleaned.String()
}
