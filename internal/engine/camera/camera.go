// Package camera holds the viewer's camera state.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// Config describes the camera's starting pose and lens.
type Config struct {
	Eye, At, Up math.Vec3
	FovY        float32 // radians
	Near, Far   float32
}

// DefaultConfig looks down at the ecliptic from 100 units above the Sun.
func DefaultConfig() Config {
	return Config{
		Eye:  math.Vec3{X: 0, Y: 100, Z: 0},
		At:   math.Vec3{X: 0, Y: 0, Z: 0},
		Up:   math.Vec3{X: 0, Y: 0, Z: 1},
		FovY: math32.Pi / 4,
		Near: 1,
		Far:  1000,
	}
}

// Camera holds the view and projection matrices.
// The trackball writes View directly; Reset rebuilds it from the config.
type Camera struct {
	config Config

	View       math.Mat4
	Projection math.Mat4
	Aspect     float32
}

// New creates a camera in its starting pose for a width x height viewport.
func New(cfg Config, width, height int) *Camera {
	c := &Camera{config: cfg}
	c.Reset()
	c.Resize(width, height)
	return c
}

// Reset restores the starting view.
func (c *Camera) Reset() {
	c.View = math.LookAt(c.config.Eye, c.config.At, c.config.Up)
}

// Resize recomputes the projection for a new viewport size.
func (c *Camera) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	c.Aspect = float32(width) / float32(height)
	c.Projection = math.Perspective(c.config.FovY, c.Aspect, c.config.Near, c.config.Far)
}
