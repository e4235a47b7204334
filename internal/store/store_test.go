package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecotrack/ecotrack/internal/user"
)

func sampleRegistry() *user.Registry {
	alice := user.New("alice")
	alice.Health = user.HealthMetrics{ExerciseMinutes: 30, WaterIntakeLiters: 2, SleepHours: 8}
	alice.Environment = user.EnvironmentalMetrics{PlasticReductionKg: 2.7, CarbonReductionKg: 1.2}
	alice.AwardBadge(user.HealthChampion, user.HealthChampionDescription)

	bob := user.New("bob")
	bob.Environment.CarbonReductionKg = 0.5

	return user.NewRegistry(alice, bob)
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	s := New(path)

	if err := s.Save(sampleRegistry()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "alice|30|2|8|2.7|1.2\nbob|0|0|0|0|0.5\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	users := reg.All()
	if len(users) != 2 {
		t.Fatalf("users = %d, want 2", len(users))
	}
	if users[0].Username != "alice" || users[0].HealthScore() != 90 || users[0].EcoScore() != 40 {
		t.Errorf("alice = %+v", users[0])
	}
	if len(users[0].Badges) != 0 {
		t.Errorf("badges should not survive a reload, got %+v", users[0].Badges)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	s := New(path)

	if err := s.Save(sampleRegistry()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(user.NewRegistry(user.New("carol"))); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "carol|0|0|0|0|0\n" {
		t.Errorf("file = %q, want only carol", data)
	}
}

func TestStore_EmptyRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	s := New(path)

	if err := s.Save(user.NewRegistry()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("users = %d, want 0", reg.Len())
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope.txt"))

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("users = %d, want 0", reg.Len())
	}
}

func TestStore_LoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "alice|1|1|1|1|1\r\n\n   \nbob|2|2|2|2|2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reg, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("users = %d, want 2", reg.Len())
	}
}

func TestStore_LoadAbortsOnMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := "alice|1|1|1|1|1\nbroken|line\ncarol|3|3|3|3|3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reg, err := New(path).Load()
	var fe *user.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *user.FormatError, got: %v", err)
	}
	if fe.Line != 2 {
		t.Errorf("line = %d, want 2", fe.Line)
	}
	if reg.Len() != 1 {
		t.Errorf("users before the bad line = %d, want 1", reg.Len())
	}
	if _, err := reg.Get("carol"); !errors.Is(err, user.ErrUserNotFound) {
		t.Error("users after the bad line should not be loaded")
	}
}

func TestStore_LoadKeepsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	if err := os.WriteFile(path, []byte("alice|1|1|1|1|1\nalice|2|2|2|2|2\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	reg, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("users = %d, want 2", reg.Len())
	}
}

func TestStore_AtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.txt")
	s := New(path)
	s.Atomic = true

	if err := s.Save(sampleRegistry()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "users.txt" {
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir entries = %v, want only users.txt", names)
	}

	reg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("users = %d, want 2", reg.Len())
	}
}

func TestStore_SaveUnwritable(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", "users.txt"))

	if err := s.Save(sampleRegistry()); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestNew_DefaultPath(t *testing.T) {
	if got := New("").Path(); got != DefaultPath {
		t.Errorf("Path = %q, want %q", got, DefaultPath)
	}
}

func TestStore_TryLock(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "users.txt"))

	lock, err := s.TryLock()
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}

	if _, err := s.TryLock(); !errors.Is(err, ErrSessionLocked) {
		t.Errorf("second TryLock: expected ErrSessionLocked, got: %v", err)
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	again, err := s.TryLock()
	if err != nil {
		t.Fatalf("TryLock after Unlock: %v", err)
	}
	again.Unlock()
}
