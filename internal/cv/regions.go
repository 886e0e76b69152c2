package cv

import "fmt"

// Point is a coordinate in frame-pixel space.
type Point struct {
	X, Y int
}

// Offset returns p moved by dx, dy
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
