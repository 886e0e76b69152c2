package bot

import (
	"fmt"

	"jordanella.com/autoscape-go/internal/cv"
)

// CapacityMonitor decides whether the inventory still has room by reading
// the last slot's pixel and comparing it to the empty-slot color.
type CapacityMonitor struct {
	frames FrameSource
	probe  cv.Point
	empty  cv.Color
}

// NewCapacityMonitor creates a monitor reading probe from fresh frames
func NewCapacityMonitor(frames FrameSource, probe cv.Point, empty cv.Color) *CapacityMonitor {
	return &CapacityMonitor{frames: frames, probe: probe, empty: empty}
}

// IsEmpty captures a frame and reports whether the probe pixel exactly
// matches the empty-slot color.
func (m *CapacityMonitor) IsEmpty() (bool, error) {
	frame, err := m.frames.NextFrame()
	if err != nil {
		return false, err
	}

	c, err := frame.ColorAt(m.probe)
	if err != nil {
		return false, fmt.Errorf("failed to read capacity probe: %w", err)
	}

	return c.SameRGB(m.empty), nil
}
