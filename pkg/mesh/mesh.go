// Package mesh generates the indexed triangle meshes drawn by the shape demo.
//
// Every vertex carries position, color and normal. Front faces wind
// counter-clockwise when viewed from outside the surface.
package mesh

import "github.com/Faultbox/shapelab/pkg/math"

// FloatsPerVertex is the interleaved vertex size: position(3) + color(3) + normal(3).
const FloatsPerVertex = 9

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// Array returns the color as [r, g, b].
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ColorFromArray converts an [r, g, b] array into a Color.
func ColorFromArray(a [3]float32) Color {
	return Color{a[0], a[1], a[2]}
}

// Vertex is a single mesh vertex.
type Vertex struct {
	Position math.Vec3
	Color    Color
	Normal   math.Vec3
}

// Primitive selects how indices are assembled.
type Primitive int

const (
	// Triangles draws one triangle per three indices.
	Triangles Primitive = iota
	// Lines draws one segment per two indices.
	Lines
)

// Mesh is an indexed vertex buffer. It is regenerated wholesale, never patched.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles, or 0 for line meshes.
func (m *Mesh) TriangleCount() int {
	if m.Primitive != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}

// Interleave packs the vertices into a flat float32 slice in upload order.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Color.R, v.Color.G, v.Color.B,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}
	return out
}

// Bounds returns the axis-aligned extent of the vertex positions.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		p := v.Position
		min = math.Vec3{X: min32(min.X, p.X), Y: min32(min.Y, p.Y), Z: min32(min.Z, p.Z)}
		max = math.Vec3{X: max32(max.X, p.X), Y: max32(max.Y, p.Y), Z: max32(max.Z, p.Z)}
	}
	return min, max
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
