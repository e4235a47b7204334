package logx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", &buf)

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn", "user", "alice")
	Error(errors.New("boom"), "shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info leaked at warn level:\n%s", out)
	}
	for _, want := range []string{"shown warn", "user=alice", "shown error", "boom", SessionID()} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	Init("chatty", &buf)

	Info("hidden info")
	if strings.Contains(buf.String(), "hidden info") {
		t.Error("unknown level should fall back to warn")
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Errorf("expected a warning about the level, got:\n%s", buf.String())
	}
}

func TestOddFieldsIgnored(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", &buf)

	Info("odd", "lonely")
	out := buf.String()
	if !strings.Contains(out, "odd number of log fields") {
		t.Errorf("expected odd-field warning, got:\n%s", out)
	}
	if !strings.Contains(out, "odd") {
		t.Errorf("message should still be logged, got:\n%s", out)
	}
}
