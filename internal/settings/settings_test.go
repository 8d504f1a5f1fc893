package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/typewright/typewright/internal/typist"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadAdvancedProfile(t *testing.T) {
	path := writeFile(t, "Speed: 85\nMode: Advanced\nFatigue: 1\nError: 0.5")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Settings{Speed: 85, Mode: ModeAdvanced, Fatigue: true, ErrorRate: 0.5}
	if s != want {
		t.Errorf("Load() = %+v, want %+v", s, want)
	}
}

func TestLoadToleratesSlop(t *testing.T) {
	// Round-tripped files accumulate stray spaces and blank lines.
	content := "Speed:   120\nMode:  Simple\n\nFatigue: 0\nError: 2.5\n"
	path := writeFile(t, content)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Speed != 120 || s.Mode != ModeSimple || s.Fatigue || s.ErrorRate != 2.5 {
		t.Errorf("Load() = %+v", s)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := writeFile(t, "Speed: 60\nMode: Simple\nTheme: Dark\nFatigue: 0\nError: 0")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Speed != 60 {
		t.Errorf("Speed = %v, want 60", s.Speed)
	}
}

func TestLoadRejectsBadNumber(t *testing.T) {
	path := writeFile(t, "Speed: fast\nMode: Simple\nFatigue: 0\nError: 0")

	_, err := Load(path)
	var cfgErr *typist.InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %v, want InvalidConfigError", err)
	}
	if cfgErr.Field != "Speed" {
		t.Errorf("Field = %q, want %q", cfgErr.Field, "Speed")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	in := Settings{Speed: 72.5, Mode: ModeAdvanced, Fatigue: true, ErrorRate: 1.25}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := Save(path, Settings{Speed: 90, Mode: ModeSimple}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	want := "Speed: 90\nMode: Simple\nFatigue: 0\nError: 0"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}
