package orbit

import (
	"fmt"

	"github.com/Faultbox/orrery/pkg/math"
)

// System is the set of bodies and rings drawn by the viewer.
type System struct {
	Bodies []Body
	Rings  []Ring
}

// Advance moves every body forward by elapsed seconds.
func (s *System) Advance(elapsed float32) {
	for i := range s.Bodies {
		s.Bodies[i].Advance(elapsed)
	}
}

// ModelMatrix returns the model matrix of body i, before radius scaling.
//
// A satellite follows its parent's orbit, then its own, and picks up both
// spins, so its texture turns with the parent.
func (s *System) ModelMatrix(i int) math.Mat4 {
	b := &s.Bodies[i]
	if b.Parent == NoParent {
		return b.orbitMatrix().Mul(math.RotateZ(b.RotationTheta))
	}

	p := &s.Bodies[b.Parent]
	return p.orbitMatrix().
		Mul(b.orbitMatrix()).
		Mul(math.RotateZ(p.RotationTheta)).
		Mul(math.RotateZ(b.RotationTheta))
}

// RingMatrix returns the model matrix of ring r, before radius scaling.
func (s *System) RingMatrix(r int) math.Mat4 {
	return s.ModelMatrix(s.Rings[r].Parent)
}

// Textures returns every distinct texture name the system references, in
// first-use order.
func (s *System) Textures() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, b := range s.Bodies {
		add(b.Texture)
	}
	for _, r := range s.Rings {
		add(r.Texture)
		add(r.Alpha)
	}
	return names
}

// Index returns the index of the body with the given name.
func (s *System) Index(name string) (int, bool) {
	for i, b := range s.Bodies {
		if b.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Validate checks the parent links and sizes.
// Satellites may only orbit root bodies, and parents must come first.
func (s *System) Validate() error {
	names := make(map[string]bool, len(s.Bodies))
	for i, b := range s.Bodies {
		if b.Name == "" {
			return fmt.Errorf("body %d: missing name", i)
		}
		if names[b.Name] {
			return fmt.Errorf("body %q: duplicate name", b.Name)
		}
		names[b.Name] = true

		if b.Radius <= 0 {
			return fmt.Errorf("body %q: radius must be positive, got %g", b.Name, b.Radius)
		}
		if b.Parent == NoParent {
			continue
		}
		if b.Parent < 0 || b.Parent >= i {
			return fmt.Errorf("body %q: parent %d must be listed before it", b.Name, b.Parent)
		}
		if parent := s.Bodies[b.Parent]; parent.Parent != NoParent {
			return fmt.Errorf("body %q: parent %q is itself a satellite", b.Name, parent.Name)
		}
	}
	for i, r := range s.Rings {
		if r.Parent < 0 || r.Parent >= len(s.Bodies) {
			return fmt.Errorf("ring %d: parent %d out of range", i, r.Parent)
		}
		if r.Radius <= 0 {
			return fmt.Errorf("ring %d: radius must be positive, got %g", i, r.Radius)
		}
	}
	return nil
}
