package input

import (
	"fmt"
	"time"

	"jordanella.com/autoscape-go/internal/cv"
)

// Button identifies a mouse button
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Position is a point in actuation space (the injector's coordinate system)
type Position struct {
	X, Y float64
}

// Injector delivers raw pointer events in actuation space.
type Injector interface {
	MoveTo(pos Position) error
	Click(button Button) error
	ScreenSize() (width, height int)
}

const (
	// approachSteps is the number of points delivered per move
	approachSteps = 6

	// DefaultStepDelay is the pause after each delivered point
	DefaultStepDelay = 10 * time.Millisecond
)

// ApproachPath returns the points of a move toward dest, starting five
// pixels short of it on the side of ref and ending on it. Frame-pixel
// coordinates are converted to actuation space by dividing by scale.
// An axis where dest equals ref approaches from below.
func ApproachPath(dest, ref cv.Point, scale float64) []Position {
	xSign, ySign := 1, 1
	if dest.X < ref.X {
		xSign = -1
	}
	if dest.Y < ref.Y {
		ySign = -1
	}

	path := make([]Position, 0, approachSteps)
	for offset := 0; offset < approachSteps; offset++ {
		back := offset - (approachSteps - 1)
		path = append(path, Position{
			X: float64(dest.X+xSign*back) / scale,
			Y: float64(dest.Y+ySign*back) / scale,
		})
	}

	return path
}

// Driver moves the pointer toward frame-space targets with a short paced
// approach instead of a jump.
type Driver struct {
	injector  Injector
	scale     float64
	stepDelay time.Duration
	sleep     func(time.Duration)
}

// NewDriver creates a driver converting frame pixels by scale
// (frame width / actuation width).
func NewDriver(injector Injector, scale float64) *Driver {
	return &Driver{
		injector:  injector,
		scale:     scale,
		stepDelay: DefaultStepDelay,
		sleep:     time.Sleep,
	}
}

// WithStepDelay overrides the pause between approach points
func (d *Driver) WithStepDelay(delay time.Duration) *Driver {
	if delay >= 0 {
		d.stepDelay = delay
	}
	return d
}

// Scale returns the frame to actuation space ratio
func (d *Driver) Scale() float64 {
	return d.scale
}

// MoveToward delivers the approach path to dest. Any delivery failure stops
// the move and is returned unchanged in meaning.
func (d *Driver) MoveToward(dest, ref cv.Point) error {
	for _, pos := range ApproachPath(dest, ref, d.scale) {
		if err := d.injector.MoveTo(pos); err != nil {
			return fmt.Errorf("couldn't move to (%.1f, %.1f): %w", pos.X, pos.Y, err)
		}
		d.sleep(d.stepDelay)
	}
	return nil
}

// Click presses and releases button at the current pointer position
func (d *Driver) Click(button Button) error {
	if err := d.injector.Click(button); err != nil {
		return fmt.Errorf("couldn't %s click: %w", button, err)
	}
	return nil
}
