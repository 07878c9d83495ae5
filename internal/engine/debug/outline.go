// Package debug provides the selection outline and screenshot capture.
package debug

import (
	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// DefaultOutlinePadding is the gap between a shape's pick volume and its outline.
const DefaultOutlinePadding = 0.05

// DefaultOutlineColor is the selection outline color.
var DefaultOutlineColor = mesh.Color{R: 1, G: 1, B: 1}

// OutlineEdgeCount is the number of line segments in an outline (12 box edges).
const OutlineEdgeCount = 12

// boxEdges lists corner index pairs. Corner i has max X when bit 0 is set,
// max Y for bit 1 and max Z for bit 2.
var boxEdges = [OutlineEdgeCount][2]uint32{
	// Bottom face
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top face
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical edges
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// SelectionOutline builds a world-space wireframe of b, grown by padding on
// every side. The result is a line mesh with 8 corners and 24 indices.
func SelectionOutline(b picking.AABB, padding float32, color mesh.Color) *mesh.Mesh {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo := b.Min.Sub(pad)
	hi := b.Max.Add(pad)
	center := lo.Add(hi).Scale(0.5)

	m := &mesh.Mesh{
		Vertices:  make([]mesh.Vertex, 8),
		Indices:   make([]uint32, 0, OutlineEdgeCount*2),
		Primitive: mesh.Lines,
	}
	for i := range m.Vertices {
		p := lo
		if i&1 != 0 {
			p.X = hi.X
		}
		if i&2 != 0 {
			p.Y = hi.Y
		}
		if i&4 != 0 {
			p.Z = hi.Z
		}
		m.Vertices[i] = mesh.Vertex{
			Position: p,
			Color:    color,
			Normal:   p.Sub(center).Normalize(),
		}
	}
	for _, e := range boxEdges {
		m.Indices = append(m.Indices, e[0], e[1])
	}
	return m
}
