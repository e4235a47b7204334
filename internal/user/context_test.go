package user

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetCurrentUser_FromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvVarUser, "testuser")

	u, err := GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if u != "testuser" {
		t.Errorf("user = %q, want %q", u, "testuser")
	}
}

func TestGetCurrentUser_NoContext(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvVarUser, "")

	u, err := GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if u != "" {
		t.Errorf("user = %q, want empty string", u)
	}
}

func TestSetCurrentUser(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv(EnvVarUser, "")

	if err := SetCurrentUser("alice"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpHome, CurrentUserFileName))
	if err != nil {
		t.Fatalf("reading current user file: %v", err)
	}
	if got := string(data); got != "alice\n" {
		t.Errorf("file content = %q, want %q", got, "alice\n")
	}

	u, err := GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if u != "alice" {
		t.Errorf("user = %q, want %q", u, "alice")
	}
}

func TestEnvVarPriority(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	if err := os.WriteFile(filepath.Join(tmpHome, CurrentUserFileName), []byte("bob\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvVarUser, "alice")

	u, err := GetCurrentUser()
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if u != "alice" {
		t.Errorf("user = %q, want %q (env should take priority)", u, "alice")
	}
}
