package cv

import "fmt"

// Color is a target color with a symmetric per-channel tolerance.
type Color struct {
	Red       uint8 `yaml:"red"`
	Green     uint8 `yaml:"green"`
	Blue      uint8 `yaml:"blue"`
	Tolerance uint8 `yaml:"-"`
}

// NewColor builds a Color from its channels and tolerance
func NewColor(red, green, blue, tolerance uint8) Color {
	return Color{Red: red, Green: green, Blue: blue, Tolerance: tolerance}
}

// WithTolerance returns a copy of c using tolerance t
func (c Color) WithTolerance(t uint8) Color {
	c.Tolerance = t
	return c
}

// SameRGB reports an exact channel match, ignoring tolerance.
func (c Color) SameRGB(other Color) bool {
	return c.Red == other.Red && c.Green == other.Green && c.Blue == other.Blue
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)±%d", c.Red, c.Green, c.Blue, c.Tolerance)
}

// ColorRange holds the bounds derived from a Color. Matching is exclusive
// at both ends: a channel equal to its low or high bound does not match.
type ColorRange struct {
	RedLow, RedHigh     uint8
	GreenLow, GreenHigh uint8
	BlueLow, BlueHigh   uint8
}

// Range clamps channel ± tolerance into [0, 255] for each channel
func (c Color) Range() ColorRange {
	return ColorRange{
		RedLow:    lowBound(c.Red, c.Tolerance),
		RedHigh:   highBound(c.Red, c.Tolerance),
		GreenLow:  lowBound(c.Green, c.Tolerance),
		GreenHigh: highBound(c.Green, c.Tolerance),
		BlueLow:   lowBound(c.Blue, c.Tolerance),
		BlueHigh:  highBound(c.Blue, c.Tolerance),
	}
}

// Contains reports whether every channel lies strictly inside its bounds
func (r ColorRange) Contains(red, green, blue uint8) bool {
	return r.RedLow < red && red < r.RedHigh &&
		r.GreenLow < green && green < r.GreenHigh &&
		r.BlueLow < blue && blue < r.BlueHigh
}

func lowBound(channel, tolerance uint8) uint8 {
	return uint8(max(0, int(channel)-int(tolerance)))
}

func highBound(channel, tolerance uint8) uint8 {
	return uint8(min(255, int(channel)+int(tolerance)))
}
