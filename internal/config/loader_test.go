package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"jordanella.com/autoscape-go/internal/cv"
)

func writeINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Settings.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write ini: %v", err)
	}
	return path
}

func TestLoadFromINIDefaults(t *testing.T) {
	path := writeINI(t, "[Settings]\n")

	cfg, err := LoadFromINI(path)
	if err != nil {
		t.Fatalf("LoadFromINI failed: %v", err)
	}

	expected := NewDefaultConfig()
	if *cfg != *expected {
		t.Errorf("Expected defaults %+v, got %+v", expected, cfg)
	}
}

func TestLoadFromINIOverrides(t *testing.T) {
	path := writeINI(t, `
[Settings]
ToggleKey = F9
Tolerance = 5
EmptySlotRed = 1
EmptySlotGreen = 2
EmptySlotBlue = 3
CycleIntervalMs = 1500
StepDelayMs = 20
OpenSettleMs = 900
DropSettleMs = 600
FrameRetryMs = 5
ActivateSound = cues/on.wav
DeactivateSound = cues/off.wav
ProfilesFile = profiles.yaml
DatabasePath =
LogLevel = debug
LogFile = autoscape.log
`)

	cfg, err := LoadFromINI(path)
	if err != nil {
		t.Fatalf("LoadFromINI failed: %v", err)
	}

	if cfg.ToggleKey != "f9" {
		t.Errorf("Expected toggle key f9, got %q", cfg.ToggleKey)
	}
	if cfg.Tolerance != 5 {
		t.Errorf("Expected tolerance 5, got %d", cfg.Tolerance)
	}
	if cfg.EmptySlot != cv.NewColor(1, 2, 3, 0) {
		t.Errorf("Expected empty slot rgb(1, 2, 3), got %v", cfg.EmptySlot)
	}
	if cfg.CycleInterval != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s cycle, got %v", cfg.CycleInterval)
	}
	if cfg.StepDelay != 20*time.Millisecond || cfg.OpenSettle != 900*time.Millisecond ||
		cfg.DropSettle != 600*time.Millisecond || cfg.FrameRetry != 5*time.Millisecond {
		t.Errorf("Unexpected pacing %+v", cfg)
	}
	if cfg.ActivateSound != "cues/on.wav" || cfg.DeactivateSound != "cues/off.wav" {
		t.Errorf("Unexpected sounds %q %q", cfg.ActivateSound, cfg.DeactivateSound)
	}
	if cfg.ProfilesFile != "profiles.yaml" {
		t.Errorf("Expected profiles.yaml, got %q", cfg.ProfilesFile)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("Expected journal disabled, got %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "DEBUG" || cfg.LogFile != "autoscape.log" {
		t.Errorf("Unexpected logging %q %q", cfg.LogLevel, cfg.LogFile)
	}
}

func TestLoadFromINIRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tolerance too high", "[Settings]\nTolerance = 300\n"},
		{"negative channel", "[Settings]\nEmptySlotBlue = -1\n"},
		{"negative delay", "[Settings]\nStepDelayMs = -10\n"},
		{"zero cycle interval", "[Settings]\nCycleIntervalMs = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromINI(writeINI(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestJournalIsOptIn(t *testing.T) {
	if NewDefaultConfig().DatabasePath != "" {
		t.Error("Expected the journal to be disabled by default")
	}

	cfg, err := LoadFromINI(writeINI(t, "[Settings]\nDatabasePath = data/autoscape.db\n"))
	if err != nil {
		t.Fatalf("LoadFromINI failed: %v", err)
	}
	if cfg.DatabasePath != "data/autoscape.db" {
		t.Errorf("Expected data/autoscape.db, got %q", cfg.DatabasePath)
	}
}

func TestLoadFromINIMissingFile(t *testing.T) {
	if _, err := LoadFromINI(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Error("Expected error for missing file")
	}
}
