// Package orbit models the bodies of the solar system and advances their
// spin and orbital angles at fixed periods.
package orbit

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// NoParent marks a body that orbits the origin.
const NoParent = -1

// Body is a sphere that spins about its own Z axis and revolves about its parent.
type Body struct {
	Name     string
	Parent   int    // index into System.Bodies, or NoParent
	Texture  string // texture name, resolved by the renderer
	Emissive bool   // drawn without lighting, like the Sun

	Distance float32 // orbital radius around the parent
	Radius   float32 // sphere radius

	RotationPeriod   float32 // seconds per spin; <= 0 never spins
	RevolutionPeriod float32 // seconds per orbit; <= 0 never orbits

	RotationTheta   float32 // current spin angle, radians
	RevolutionTheta float32 // current orbital angle, radians
}

// Advance moves the body's angles forward by elapsed seconds.
func (b *Body) Advance(elapsed float32) {
	if b.RotationPeriod > 0 {
		b.RotationTheta += elapsed / b.RotationPeriod * 2 * math32.Pi
	}
	if b.RevolutionPeriod > 0 {
		b.RevolutionTheta += elapsed / b.RevolutionPeriod * 2 * math32.Pi
	}
}

// orbitMatrix places the body on its orbit without spinning it.
func (b *Body) orbitMatrix() math.Mat4 {
	return math.RotateZ(b.RevolutionTheta).Mul(math.Translate(b.Distance, 0, 0))
}

// Ring is a flat annulus drawn around a body.
type Ring struct {
	Parent  int
	Radius  float32
	Texture string
	Alpha   string // texture whose red channel is the ring opacity
}
