// Package settings reads and writes the legacy flat profile format, four
// "Key: Value" lines named Speed, Mode, Fatigue and Error.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/typewright/typewright/internal/typist"
)

// Profile modes. Simple restores speed only on import; Advanced also
// restores the error-rate override and fatigue.
const (
	ModeSimple   = "Simple"
	ModeAdvanced = "Advanced"
)

// Settings holds a stored typing profile. ErrorRate is a percentage.
type Settings struct {
	Speed     float64
	Mode      string
	Fatigue   bool
	ErrorRate float64
}

// Load parses the profile at path. Values tolerate stray whitespace and
// line breaks; unknown keys are ignored.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	values := map[string]string{}
	lastKey := ""
	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			// A line without a separator continues the previous value.
			if lastKey != "" && strings.TrimSpace(line) != "" {
				values[lastKey] += "\n" + line
			}
			continue
		}
		lastKey = strings.TrimSpace(key)
		values[lastKey] = value
	}

	s := Settings{Mode: strings.TrimSpace(values["Mode"])}
	if s.Speed, err = parseFloat("Speed", values["Speed"]); err != nil {
		return Settings{}, err
	}
	if s.ErrorRate, err = parseFloat("Error", values["Error"]); err != nil {
		return Settings{}, err
	}
	if raw, ok := values["Fatigue"]; ok {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Settings{}, &typist.InvalidConfigError{
				Field:  "Fatigue",
				Value:  strings.TrimSpace(raw),
				Reason: "must be 0 or 1",
			}
		}
		s.Fatigue = v
	}
	return s, nil
}

// Save writes the profile to path in the legacy format.
func Save(path string, s Settings) error {
	fatigue := 0
	if s.Fatigue {
		fatigue = 1
	}
	content := fmt.Sprintf("Speed: %s\nMode: %s\nFatigue: %d\nError: %s",
		formatFloat(s.Speed), s.Mode, fatigue, formatFloat(s.ErrorRate))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func parseFloat(key, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &typist.InvalidConfigError{Field: key, Value: trimmed, Reason: "must be a number"}
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
