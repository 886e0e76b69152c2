package bot

import (
	"fmt"
	"time"

	"jordanella.com/autoscape-go/internal/config"
	"jordanella.com/autoscape-go/internal/cv"
	"jordanella.com/autoscape-go/internal/profile"
)

// Settings is the process-lifetime configuration of the loop. It is built
// once at startup and never modified afterwards.
type Settings struct {
	Target    cv.Color
	Center    cv.Point
	Scale     float64
	AutoEmpty bool

	// Capacity check
	CapacityProbe cv.Point
	EmptySlot     cv.Color

	// Recovery geometry, frame pixels
	RecoverySlot cv.Point
	RecoveryDrop cv.Point

	// Pacing
	CycleInterval time.Duration
	OpenSettle    time.Duration
	DropSettle    time.Duration
}

// NewSettings combines the tunables, the profile records for the operator's
// choices and the measured display sizes.
func NewSettings(cfg *config.Config, catalog *profile.Catalog, choices profile.Choices, frameWidth, frameHeight, actuationWidth int) (*Settings, error) {
	if frameWidth <= 0 || frameHeight <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", frameWidth, frameHeight)
	}
	if actuationWidth <= 0 {
		return nil, fmt.Errorf("invalid pointer screen width %d", actuationWidth)
	}

	aspect, err := catalog.Aspect(choices.Aspect)
	if err != nil {
		return nil, err
	}
	target, err := catalog.Target(choices.Target)
	if err != nil {
		return nil, err
	}

	probe := aspect.CapacityProbe
	if probe.X >= frameWidth || probe.Y >= frameHeight {
		return nil, fmt.Errorf("capacity probe %v lies outside the %dx%d display; check the aspect ratio choice",
			probe, frameWidth, frameHeight)
	}

	return &Settings{
		Target:        target.Color.WithTolerance(cfg.Tolerance),
		Center:        cv.Point{X: frameWidth / 2, Y: frameHeight / 2},
		Scale:         float64(frameWidth) / float64(actuationWidth),
		AutoEmpty:     choices.AutoEmpty,
		CapacityProbe: probe,
		EmptySlot:     cfg.EmptySlot,
		RecoverySlot:  aspect.RecoverySlot,
		RecoveryDrop:  aspect.DropPoint(),
		CycleInterval: cfg.CycleInterval,
		OpenSettle:    cfg.OpenSettle,
		DropSettle:    cfg.DropSettle,
	}, nil
}
