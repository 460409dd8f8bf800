// Package lighting describes the scene's light source.
package lighting

// PointLight is a light at a fixed world position with Phong color terms.
// Colors are RGBA in the 0-1 range.
type PointLight struct {
	Position [4]float32 // homogeneous; w = 1 for a positional light
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32
}

// Sun returns a white light at the origin with no ambient term.
func Sun() PointLight {
	return PointLight{
		Position: [4]float32{0, 0, 0, 1},
		Ambient:  [4]float32{0, 0, 0, 1},
		Diffuse:  [4]float32{1, 1, 1, 1},
		Specular: [4]float32{1, 1, 1, 1},
	}
}

// Clamped returns a copy with every color channel limited to 0-1.
func (l PointLight) Clamped() PointLight {
	clamp := func(c *[4]float32) {
		for i := range c {
			c[i] = min(max(c[i], 0), 1)
		}
	}
	clamp(&l.Ambient)
	clamp(&l.Diffuse)
	clamp(&l.Specular)
	return l
}
