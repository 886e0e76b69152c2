// Package profile maps the operator's startup choices to configuration
// records. The set of choices is closed; the records come from a YAML table
// that must define every choice.
package profile

import (
	_ "embed"
	"errors"
	"fmt"

	"jordanella.com/autoscape-go/internal/cv"
)

// ErrUnknownProfile reports a choice with no record
var ErrUnknownProfile = errors.New("unknown profile")

// AspectRatio selects the screen layout
type AspectRatio int

const (
	AspectMacBook AspectRatio = iota
	AspectWindows
)

var aspectIDs = map[AspectRatio]string{
	AspectMacBook: "macbook",
	AspectWindows: "windows",
}

// AspectRatios lists every layout in menu order
func AspectRatios() []AspectRatio {
	return []AspectRatio{AspectMacBook, AspectWindows}
}

func (a AspectRatio) String() string {
	if id, ok := aspectIDs[a]; ok {
		return id
	}
	return fmt.Sprintf("aspect(%d)", int(a))
}

// Target selects the color to hunt for
type Target int

const (
	TargetIron Target = iota
	TargetCoal
)

var targetIDs = map[Target]string{
	TargetIron: "iron",
	TargetCoal: "coal",
}

// Targets lists every target in menu order
func Targets() []Target {
	return []Target{TargetIron, TargetCoal}
}

func (t Target) String() string {
	if id, ok := targetIDs[t]; ok {
		return id
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Choices are the three startup selections
type Choices struct {
	Aspect    AspectRatio
	Target    Target
	AutoEmpty bool
}

// AspectProfile is the layout-dependent geometry
type AspectProfile struct {
	Label         string
	CapacityProbe cv.Point
	RecoverySlot  cv.Point
	DropOffset    int
}

// DropPoint is where the recovered item is released
func (p AspectProfile) DropPoint() cv.Point {
	return p.RecoverySlot.Offset(0, p.DropOffset)
}

// TargetProfile is the color to hunt for, without tolerance
type TargetProfile struct {
	Label string
	Color cv.Color
}

//go:embed profiles.yaml
var defaultProfiles []byte
