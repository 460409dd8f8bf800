// Package mesh generates the vertex and index data for the viewer's
// sphere, ring and skybox geometry.
package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// DefaultTessellation is the number of longitude segments of a sphere.
const DefaultTessellation = 72

// ringInner is the inner edge of a ring as a fraction of its radius.
const ringInner float32 = 0.6

// Vertex is one interleaved vertex: position, normal, texcoord.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 8 * 4

// Mesh is indexed triangle geometry.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Floats flattens the vertices for upload.
func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y,
		)
	}
	return out
}

// Sphere builds a unit sphere with tess longitude segments and tess/2
// latitude bands. The poles lie on the Z axis.
func Sphere(tess int) *Mesh {
	if tess < 4 {
		tess = 4
	}
	tess += tess % 2
	bands := tess / 2
	step := 2 * math32.Pi / float32(tess)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (tess+1)*(bands+1)),
		Indices:  make([]uint32, 0, tess*bands*6),
	}

	// i walks longitude, k walks latitude from the north pole.
	for i := 0; i <= tess; i++ {
		theta := step * float32(i)
		for k := 0; k <= bands; k++ {
			phi := step * float32(k)
			p := math.Vec3{
				X: math32.Sin(phi) * math32.Cos(theta),
				Y: math32.Sin(phi) * math32.Sin(theta),
				Z: math32.Cos(phi),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   p,
				UV:       math.Vec2{X: theta / (2 * math32.Pi), Y: 1 - phi/math32.Pi},
			})
		}
	}

	row := uint32(bands + 1)
	for i := uint32(0); i < uint32(tess); i++ {
		for k := uint32(0); k < uint32(bands); k++ {
			a := i*row + k
			b := (i+1)*row + k
			m.Indices = append(m.Indices,
				a, a+1, b+1,
				b+1, b, a,
			)
		}
	}
	return m
}

// Ring builds a flat annulus in the XY plane with outer radius 1.
// Each quad is emitted with both windings so it shows from either side.
func Ring(tess int) *Mesh {
	if tess < 3 {
		tess = 3
	}
	step := 2 * math32.Pi / float32(tess)

	m := &Mesh{
		Vertices: make([]Vertex, 0, (tess+1)*2),
		Indices:  make([]uint32, 0, tess*12),
	}

	for i := 0; i <= tess; i++ {
		t := step * float32(i)
		x, y := math32.Cos(t), math32.Sin(t)
		outer := math.Vec3{X: x, Y: y}
		inner := outer.Scale(ringInner)
		m.Vertices = append(m.Vertices,
			Vertex{Position: outer, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: t}},
			Vertex{Position: inner, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: t}},
		)
	}

	for i := uint32(0); i < uint32(tess); i++ {
		o0, i0 := i*2, i*2+1
		o1, i1 := (i+1)*2, (i+1)*2+1
		m.Indices = append(m.Indices,
			o0, i0, i1,
			i1, i0, o0,
			i1, o1, o0,
			o0, o1, i1,
		)
	}
	return m
}

// Skybox returns the 36 positions (12 triangles) of a unit cube.
// Draw it with face culling disabled.
func Skybox() []float32 {
	return []float32{
		// +X
		1, -1, -1, 1, 1, 1, 1, 1, -1,
		1, -1, -1, 1, -1, 1, 1, 1, 1,
		// -X
		-1, -1, -1, -1, 1, 1, -1, -1, 1,
		-1, -1, -1, -1, 1, -1, -1, 1, 1,
		// +Y
		-1, 1, -1, 1, 1, 1, -1, 1, 1,
		-1, 1, -1, 1, 1, -1, 1, 1, 1,
		// -Y
		-1, -1, -1, 1, -1, 1, 1, -1, -1,
		-1, -1, -1, -1, -1, 1, 1, -1, 1,
		// +Z
		-1, -1, 1, 1, 1, 1, 1, -1, 1,
		-1, -1, 1, -1, 1, 1, 1, 1, 1,
		// -Z
		-1, -1, -1, 1, -1, -1, 1, 1, -1,
		-1, -1, -1, 1, 1, -1, -1, 1, -1,
	}
}
