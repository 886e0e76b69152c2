package input

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-vgo/robotgo"
)

// ErrOutsideScreen reports a pointer target beyond the actuation space
var ErrOutsideScreen = errors.New("position outside screen")

// RobotgoInjector drives the system pointer through robotgo.
type RobotgoInjector struct {
	width  int
	height int
}

// NewRobotgoInjector reads the actuation space size once at startup
func NewRobotgoInjector() (*RobotgoInjector, error) {
	width, height := robotgo.GetScreenSize()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid pointer screen size %dx%d", width, height)
	}
	return &RobotgoInjector{width: width, height: height}, nil
}

func (r *RobotgoInjector) MoveTo(pos Position) error {
	x, y, err := r.screenPoint(pos)
	if err != nil {
		return err
	}

	robotgo.Move(x, y)
	return nil
}

// screenPoint bounds-checks pos in actuation space and truncates it to the
// pixel it lies in. A half-point on a scaled display stays on screen.
func (r *RobotgoInjector) screenPoint(pos Position) (int, int, error) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= float64(r.width) || pos.Y >= float64(r.height) {
		return 0, 0, fmt.Errorf("%w: (%.1f, %.1f) on %dx%d", ErrOutsideScreen, pos.X, pos.Y, r.width, r.height)
	}
	return int(math.Floor(pos.X)), int(math.Floor(pos.Y)), nil
}

func (r *RobotgoInjector) Click(button Button) error {
	switch button {
	case ButtonLeft, ButtonRight:
		robotgo.Click(button.String(), false)
		return nil
	default:
		return fmt.Errorf("unsupported button %s", button)
	}
}

// ScreenSize returns the actuation space resolution
func (r *RobotgoInjector) ScreenSize() (width, height int) {
	return r.width, r.height
}
