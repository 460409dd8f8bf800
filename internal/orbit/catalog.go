package orbit

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// catalogFile is the on-disk shape of a system catalog.
// Parents are referenced by name and resolved to indices on load.
type catalogFile struct {
	Bodies []catalogBody `yaml:"bodies"`
	Rings  []catalogRing `yaml:"rings"`
}

type catalogBody struct {
	Name             string  `yaml:"name"`
	Parent           string  `yaml:"parent"`
	Texture          string  `yaml:"texture"`
	Emissive         bool    `yaml:"emissive"`
	Distance         float32 `yaml:"distance"`
	Radius           float32 `yaml:"radius"`
	RotationPeriod   float32 `yaml:"rotation_period"`
	RevolutionPeriod float32 `yaml:"revolution_period"`
}

type catalogRing struct {
	Parent      string  `yaml:"parent"`
	Radius      float32 `yaml:"radius"`
	RadiusScale float32 `yaml:"radius_scale"` // multiple of the parent radius, used when radius is 0
	Texture     string  `yaml:"texture"`
	Alpha       string  `yaml:"alpha"`
}

// DefaultCatalog returns the built-in solar system.
func DefaultCatalog() (*System, error) {
	sys, err := ParseCatalog(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return sys, nil
}

// LoadCatalog reads a system catalog from a YAML file.
func LoadCatalog(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sys, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return sys, nil
}

// ParseCatalog decodes and validates a system catalog.
func ParseCatalog(data []byte) (*System, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(file.Bodies) == 0 {
		return nil, fmt.Errorf("catalog has no bodies")
	}

	sys := &System{Bodies: make([]Body, 0, len(file.Bodies))}
	for _, cb := range file.Bodies {
		parent := NoParent
		if cb.Parent != "" {
			idx, ok := sys.Index(cb.Parent)
			if !ok {
				return nil, fmt.Errorf("body %q: unknown parent %q (parents must be listed first)", cb.Name, cb.Parent)
			}
			parent = idx
		}
		sys.Bodies = append(sys.Bodies, Body{
			Name:             cb.Name,
			Parent:           parent,
			Texture:          cb.Texture,
			Emissive:         cb.Emissive,
			Distance:         cb.Distance,
			Radius:           cb.Radius,
			RotationPeriod:   cb.RotationPeriod,
			RevolutionPeriod: cb.RevolutionPeriod,
		})
	}

	for i, cr := range file.Rings {
		parent, ok := sys.Index(cr.Parent)
		if !ok {
			return nil, fmt.Errorf("ring %d: unknown parent %q", i, cr.Parent)
		}
		radius := cr.Radius
		if radius == 0 {
			radius = sys.Bodies[parent].Radius * cr.RadiusScale
		}
		sys.Rings = append(sys.Rings, Ring{
			Parent:  parent,
			Radius:  radius,
			Texture: cr.Texture,
			Alpha:   cr.Alpha,
		})
	}

	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return sys, nil
}
