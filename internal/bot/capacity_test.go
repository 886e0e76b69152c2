package bot

import (
	"errors"
	"testing"

	"jordanella.com/autoscape-go/internal/cv"
)

func TestCapacityMonitorEmptySlot(t *testing.T) {
	m := NewCapacityMonitor(&fakeFrames{frame: buildFrame(false)}, testProbe, testEmpty)

	empty, err := m.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if !empty {
		t.Error("Expected empty slot")
	}
}

func TestCapacityMonitorRequiresExactMatch(t *testing.T) {
	frame := buildFrame(false)
	// One step off in blue is already an occupied slot
	frame.Pix[frame.Stride*testProbe.Y+4*testProbe.X]++

	m := NewCapacityMonitor(&fakeFrames{frame: frame}, testProbe, testEmpty)

	empty, err := m.IsEmpty()
	if err != nil {
		t.Fatalf("IsEmpty failed: %v", err)
	}
	if empty {
		t.Error("Expected near-miss color to read as full")
	}
}

func TestCapacityMonitorProbeOutsideFrame(t *testing.T) {
	m := NewCapacityMonitor(&fakeFrames{frame: buildFrame(false)}, cv.Point{X: 40, Y: 2}, testEmpty)

	_, err := m.IsEmpty()
	if !errors.Is(err, cv.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}
