package cv

import (
	"reflect"
	"testing"
)

func TestScanRowMajorOrder(t *testing.T) {
	frame := newTestFrame(3, 3, 4)
	setPixel(frame, 2, 0, 50, 33, 25)
	setPixel(frame, 0, 1, 50, 33, 25)
	setPixel(frame, 1, 2, 49, 34, 24)
	setPixel(frame, 1, 1, 48, 33, 25) // on the low red bound

	got := Scan(frame, NewColor(50, 33, 25, 2))
	expected := []Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	frame := newTestFrame(5, 4, 12)
	setPixel(frame, 4, 3, 42, 42, 28)
	setPixel(frame, 0, 0, 42, 42, 28)
	setPixel(frame, 2, 2, 43, 41, 29)

	target := NewColor(42, 42, 28, 2)
	first := Scan(frame, target)
	second := Scan(frame, target)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rescanning changed result: %v then %v", first, second)
	}
	if len(first) != 3 {
		t.Errorf("Expected 3 matches, got %d", len(first))
	}
}

func TestScanNoMatchIsEmpty(t *testing.T) {
	frame := newTestFrame(4, 4, 0)

	got := Scan(frame, NewColor(50, 33, 25, 2))
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestScanIgnoresRowPadding(t *testing.T) {
	frame := newTestFrame(2, 2, 8)
	// Paint the padding of row 0 with the target color
	for i := 8; i < frame.Stride; i += 4 {
		frame.Pix[i], frame.Pix[i+1], frame.Pix[i+2] = 25, 33, 50
	}

	if got := Scan(frame, NewColor(50, 33, 25, 2)); len(got) != 0 {
		t.Errorf("Padding bytes should never match, got %v", got)
	}
}

func TestScanExclusiveToleranceOne(t *testing.T) {
	// 4x1 frame, stride 16: only pixel 2 is the target color, its neighbours
	// differ by exactly one on a single channel.
	pix := make([]byte, 16)
	frame, err := NewFrame(4, 1, pix)
	if err != nil {
		t.Fatalf("Failed to create frame: %v", err)
	}
	if frame.Stride != 16 {
		t.Fatalf("Expected stride 16, got %d", frame.Stride)
	}
	setPixel(frame, 0, 0, 99, 100, 100)
	setPixel(frame, 1, 0, 100, 101, 100)
	setPixel(frame, 2, 0, 100, 100, 100)
	setPixel(frame, 3, 0, 100, 100, 99)

	if got := Scan(frame, NewColor(100, 100, 100, 0)); len(got) != 0 {
		t.Errorf("Tolerance 0 should match nothing, got %v", got)
	}

	got := Scan(frame, NewColor(100, 100, 100, 1))
	expected := []Point{{X: 2, Y: 0}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Point
		reference  Point
		expected   Point
		found      bool
	}{
		{
			name:       "closer on y axis",
			candidates: []Point{{X: 0, Y: 5}, {X: 10, Y: 0}},
			reference:  Point{},
			expected:   Point{X: 0, Y: 5},
			found:      true,
		},
		{
			name:      "empty",
			reference: Point{X: 720, Y: 450},
			found:     false,
		},
		{
			name:       "candidates left of and above reference",
			candidates: []Point{{X: 100, Y: 100}, {X: 700, Y: 440}, {X: 1400, Y: 900}},
			reference:  Point{X: 720, Y: 450},
			expected:   Point{X: 700, Y: 440},
			found:      true,
		},
		{
			name:       "tie keeps first",
			candidates: []Point{{X: 5, Y: 10}, {X: 15, Y: 10}},
			reference:  Point{X: 10, Y: 10},
			expected:   Point{X: 5, Y: 10},
			found:      true,
		},
		{
			name:       "origin is a real match",
			candidates: []Point{{X: 0, Y: 0}, {X: 40, Y: 40}},
			reference:  Point{X: 1, Y: 1},
			expected:   Point{X: 0, Y: 0},
			found:      true,
		},
		{
			name:       "far away candidate still wins",
			candidates: []Point{{X: 20000, Y: 20000}},
			reference:  Point{},
			expected:   Point{X: 20000, Y: 20000},
			found:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Nearest(tt.candidates, tt.reference)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
