package cv

import (
	"errors"
	"testing"
)

// newTestFrame builds a frame of the given size with padding bytes after each
// row, so tests exercise stride-based addressing.
func newTestFrame(width, height, padding int) *Frame {
	stride := 4*width + padding
	pix := make([]byte, stride*height)
	for i := range pix {
		pix[i] = 0xEE // padding and unset pixels never match test colors
	}
	frame, err := NewFrameWithStride(width, height, stride, pix)
	if err != nil {
		panic(err)
	}
	return frame
}

func setPixel(f *Frame, x, y int, red, green, blue uint8) {
	i := f.Stride*y + 4*x
	f.Pix[i] = blue
	f.Pix[i+1] = green
	f.Pix[i+2] = red
	f.Pix[i+3] = 0
}

func TestNewFrameDerivesStride(t *testing.T) {
	frame, err := NewFrame(4, 2, make([]byte, 40))
	if err != nil {
		t.Fatalf("Failed to create frame: %v", err)
	}
	if frame.Stride != 20 {
		t.Errorf("Expected stride 20, got %d", frame.Stride)
	}
}

func TestNewFrameRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, stride int
		size                  int
	}{
		{"zero width", 0, 2, 8, 16},
		{"zero height", 2, 0, 8, 16},
		{"stride shorter than row", 4, 2, 12, 24},
		{"short buffer", 4, 2, 16, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrameWithStride(tt.width, tt.height, tt.stride, make([]byte, tt.size))
			if !errors.Is(err, ErrInvalidFrame) {
				t.Errorf("Expected ErrInvalidFrame, got %v", err)
			}
		})
	}
}

func TestColorAtUsesStrideAndChannelOrder(t *testing.T) {
	frame := newTestFrame(3, 3, 8)
	setPixel(frame, 2, 1, 62, 53, 41)

	c, err := frame.ColorAt(Point{X: 2, Y: 1})
	if err != nil {
		t.Fatalf("ColorAt failed: %v", err)
	}
	if c.Red != 62 || c.Green != 53 || c.Blue != 41 {
		t.Errorf("Expected rgb(62, 53, 41), got %v", c)
	}
}

func TestColorAtOutOfBounds(t *testing.T) {
	frame := newTestFrame(2, 2, 0)

	for _, p := range []Point{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		if _, err := frame.ColorAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ColorAt(%v): expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	frame := newTestFrame(2, 1, 0)
	clone := frame.Clone()

	setPixel(frame, 0, 0, 1, 2, 3)

	c, _ := clone.ColorAt(Point{})
	if c.Red == 1 {
		t.Error("Clone should not observe writes to the original buffer")
	}
}
