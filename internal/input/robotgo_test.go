package input

import (
	"errors"
	"testing"

	"jordanella.com/autoscape-go/internal/cv"
)

func TestScreenPointEdges(t *testing.T) {
	r := &RobotgoInjector{width: 1440, height: 900}

	tests := []struct {
		name   string
		pos    Position
		x, y   int
		inside bool
	}{
		{"origin", Position{X: 0, Y: 0}, 0, 0, true},
		{"half point", Position{X: 719.5, Y: 449.5}, 719, 449, true},
		{"last column half point", Position{X: 1439.5, Y: 10}, 1439, 10, true},
		{"last row half point", Position{X: 10, Y: 899.5}, 10, 899, true},
		{"bottom right", Position{X: 1439.99, Y: 899.99}, 1439, 899, true},
		{"right edge", Position{X: 1440, Y: 10}, 0, 0, false},
		{"bottom edge", Position{X: 10, Y: 900}, 0, 0, false},
		{"negative", Position{X: -0.5, Y: 10}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, err := r.screenPoint(tt.pos)
			if !tt.inside {
				if !errors.Is(err, ErrOutsideScreen) {
					t.Errorf("Expected ErrOutsideScreen, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if x != tt.x || y != tt.y {
				t.Errorf("Expected (%d, %d), got (%d, %d)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestScaledApproachToLastPixelStaysOnScreen(t *testing.T) {
	r := &RobotgoInjector{width: 1440, height: 900}

	// 2880x1800 frame on a 1440x900 pointer space
	path := ApproachPath(cv.Point{X: 2879, Y: 1799}, cv.Point{X: 1440, Y: 900}, 2)
	for i, pos := range path {
		if _, _, err := r.screenPoint(pos); err != nil {
			t.Errorf("Point %d %+v rejected: %v", i, pos, err)
		}
	}

	last := path[len(path)-1]
	x, y, _ := r.screenPoint(last)
	if x != 1439 || y != 899 {
		t.Errorf("Expected final pixel (1439, 899), got (%d, %d)", x, y)
	}
}
