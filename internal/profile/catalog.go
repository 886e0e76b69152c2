package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"jordanella.com/autoscape-go/internal/cv"
)

// Catalog holds a validated record for every AspectRatio and Target.
type Catalog struct {
	aspects map[AspectRatio]AspectProfile
	targets map[Target]TargetProfile
}

// pointDef represents a coordinate in the YAML file
type pointDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p pointDef) point() cv.Point {
	return cv.Point{X: p.X, Y: p.Y}
}

type aspectDef struct {
	ID            string   `yaml:"id"`
	Label         string   `yaml:"label"`
	CapacityProbe pointDef `yaml:"capacity_probe"`
	Recovery      struct {
		Slot       pointDef `yaml:"slot"`
		DropOffset int      `yaml:"drop_offset"`
	} `yaml:"recovery"`
}

type targetDef struct {
	ID    string   `yaml:"id"`
	Label string   `yaml:"label"`
	Color cv.Color `yaml:"color"`
}

// catalogFile represents the structure of a profiles YAML file
type catalogFile struct {
	AspectRatios []aspectDef `yaml:"aspect_ratios"`
	Targets      []targetDef `yaml:"targets"`
}

// LoadDefault parses the built-in profile table
func LoadDefault() (*Catalog, error) {
	return Parse(defaultProfiles)
}

// LoadFile parses a profile table from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a profile table
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile YAML: %w", err)
	}

	c := &Catalog{
		aspects: make(map[AspectRatio]AspectProfile),
		targets: make(map[Target]TargetProfile),
	}

	for i, def := range file.AspectRatios {
		aspect, ok := lookup(aspectIDs, def.ID)
		if !ok {
			return nil, fmt.Errorf("aspect ratio %d: %w %q", i+1, ErrUnknownProfile, def.ID)
		}
		if _, dup := c.aspects[aspect]; dup {
			return nil, fmt.Errorf("aspect ratio %q defined twice", def.ID)
		}
		if err := validatePoint(def.CapacityProbe, "capacity_probe"); err != nil {
			return nil, fmt.Errorf("aspect ratio %q: %w", def.ID, err)
		}
		if err := validatePoint(def.Recovery.Slot, "recovery.slot"); err != nil {
			return nil, fmt.Errorf("aspect ratio %q: %w", def.ID, err)
		}

		c.aspects[aspect] = AspectProfile{
			Label:         labelOr(def.Label, def.ID),
			CapacityProbe: def.CapacityProbe.point(),
			RecoverySlot:  def.Recovery.Slot.point(),
			DropOffset:    def.Recovery.DropOffset,
		}
	}

	for i, def := range file.Targets {
		target, ok := lookup(targetIDs, def.ID)
		if !ok {
			return nil, fmt.Errorf("target %d: %w %q", i+1, ErrUnknownProfile, def.ID)
		}
		if _, dup := c.targets[target]; dup {
			return nil, fmt.Errorf("target %q defined twice", def.ID)
		}

		c.targets[target] = TargetProfile{
			Label: labelOr(def.Label, def.ID),
			Color: def.Color,
		}
	}

	for _, a := range AspectRatios() {
		if _, ok := c.aspects[a]; !ok {
			return nil, fmt.Errorf("aspect ratio %q: missing definition", a)
		}
	}
	for _, t := range Targets() {
		if _, ok := c.targets[t]; !ok {
			return nil, fmt.Errorf("target %q: missing definition", t)
		}
	}

	return c, nil
}

// Aspect returns the record for a
func (c *Catalog) Aspect(a AspectRatio) (AspectProfile, error) {
	p, ok := c.aspects[a]
	if !ok {
		return AspectProfile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, a)
	}
	return p, nil
}

// Target returns the record for t
func (c *Catalog) Target(t Target) (TargetProfile, error) {
	p, ok := c.targets[t]
	if !ok {
		return TargetProfile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, t)
	}
	return p, nil
}

func lookup[K comparable](ids map[K]string, id string) (K, bool) {
	for k, v := range ids {
		if v == id {
			return k, true
		}
	}
	var zero K
	return zero, false
}

func validatePoint(p pointDef, field string) error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("%s (%d, %d) must not be negative", field, p.X, p.Y)
	}
	return nil
}

func labelOr(label, id string) string {
	if label == "" {
		return id
	}
	return label
}
