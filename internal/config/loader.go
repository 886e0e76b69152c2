package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/ini.v1"
	"jordanella.com/autoscape-go/internal/cv"
)

// DefaultPath is where the tunables file is looked up
const DefaultPath = "Settings.ini"

// Config holds the tunables read from Settings.ini. The operator's profile
// choices are not stored here; they are asked for on every start.
type Config struct {
	// Input
	ToggleKey string

	// Matching
	Tolerance uint8
	EmptySlot cv.Color

	// Pacing
	CycleInterval time.Duration
	StepDelay     time.Duration
	OpenSettle    time.Duration
	DropSettle    time.Duration
	FrameRetry    time.Duration

	// Assets
	ActivateSound   string
	DeactivateSound string
	ProfilesFile    string // empty uses the built-in table

	// Journal and logs
	DatabasePath string // empty disables the journal
	LogLevel     string
	LogFile      string
}

// NewDefaultConfig returns the built-in tunables
func NewDefaultConfig() *Config {
	return &Config{
		ToggleKey:       "delete",
		Tolerance:       2,
		EmptySlot:       cv.NewColor(62, 53, 41, 0),
		CycleInterval:   3 * time.Second,
		StepDelay:       10 * time.Millisecond,
		OpenSettle:      750 * time.Millisecond,
		DropSettle:      500 * time.Millisecond,
		FrameRetry:      cv.DefaultRetryDelay,
		ActivateSound:   "sound/activate.wav",
		DeactivateSound: "sound/deactivate.wav",
		LogLevel:        "INFO",
	}
}

// LoadFromINI loads configuration from a Settings.ini file. Keys that are
// absent keep their defaults.
func LoadFromINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	section := file.Section("Settings")
	defaults := NewDefaultConfig()
	config := &Config{}

	config.ToggleKey = strings.ToLower(section.Key("ToggleKey").MustString(defaults.ToggleKey))

	tolerance := section.Key("Tolerance").MustInt(int(defaults.Tolerance))
	if tolerance < 0 || tolerance > 255 {
		return nil, fmt.Errorf("Tolerance must be between 0 and 255, got %d", tolerance)
	}
	config.Tolerance = uint8(tolerance)

	red, err := channel(section, "EmptySlotRed", defaults.EmptySlot.Red)
	if err != nil {
		return nil, err
	}
	green, err := channel(section, "EmptySlotGreen", defaults.EmptySlot.Green)
	if err != nil {
		return nil, err
	}
	blue, err := channel(section, "EmptySlotBlue", defaults.EmptySlot.Blue)
	if err != nil {
		return nil, err
	}
	config.EmptySlot = cv.NewColor(red, green, blue, 0)

	durations := []struct {
		key    string
		target *time.Duration
		def    time.Duration
	}{
		{"CycleIntervalMs", &config.CycleInterval, defaults.CycleInterval},
		{"StepDelayMs", &config.StepDelay, defaults.StepDelay},
		{"OpenSettleMs", &config.OpenSettle, defaults.OpenSettle},
		{"DropSettleMs", &config.DropSettle, defaults.DropSettle},
		{"FrameRetryMs", &config.FrameRetry, defaults.FrameRetry},
	}
	for _, d := range durations {
		ms := section.Key(d.key).MustInt(int(d.def / time.Millisecond))
		if ms < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %d", d.key, ms)
		}
		*d.target = time.Duration(ms) * time.Millisecond
	}
	if config.CycleInterval <= 0 {
		return nil, fmt.Errorf("CycleIntervalMs must be positive, got %d", config.CycleInterval/time.Millisecond)
	}
	// Sub-millisecond default survives an absent key
	if !section.HasKey("FrameRetryMs") {
		config.FrameRetry = defaults.FrameRetry
	}

	config.ActivateSound = section.Key("ActivateSound").MustString(defaults.ActivateSound)
	config.DeactivateSound = section.Key("DeactivateSound").MustString(defaults.DeactivateSound)
	config.ProfilesFile = section.Key("ProfilesFile").MustString("")

	config.DatabasePath = section.Key("DatabasePath").MustString(defaults.DatabasePath)
	config.LogLevel = strings.ToUpper(section.Key("LogLevel").MustString(defaults.LogLevel))
	config.LogFile = section.Key("LogFile").MustString("")

	return config, nil
}

func channel(section *ini.Section, key string, def uint8) (uint8, error) {
	v := section.Key(key).MustInt(int(def))
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%s must be between 0 and 255, got %d", key, v)
	}
	return uint8(v), nil
}
