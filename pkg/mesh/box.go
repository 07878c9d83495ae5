package mesh

import "github.com/Faultbox/shapelab/pkg/math"

// Box face colors. The entity color does not tint them.
var (
	FrontColor  = Color{1, 0, 0}
	BackColor   = Color{0, 1, 0}
	LeftColor   = Color{0, 0, 1}
	RightColor  = Color{1, 1, 0}
	TopColor    = Color{0, 1, 1}
	BottomColor = Color{1, 0, 1}
)

// boxFace describes one cube face. u x v points along normal, which makes
// the corner order below counter-clockwise from outside.
type boxFace struct {
	normal, u, v math.Vec3
	color        Color
}

var boxFaces = [6]boxFace{
	{normal: math.Vec3{Z: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}, color: FrontColor},
	{normal: math.Vec3{Z: -1}, u: math.Vec3{X: -1}, v: math.Vec3{Y: 1}, color: BackColor},
	{normal: math.Vec3{X: -1}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}, color: LeftColor},
	{normal: math.Vec3{X: 1}, u: math.Vec3{Z: -1}, v: math.Vec3{Y: 1}, color: RightColor},
	{normal: math.Vec3{Y: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: -1}, color: TopColor},
	{normal: math.Vec3{Y: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}, color: BottomColor},
}

// Box returns a unit cube centered at the origin: 24 vertices (four per
// face so each face keeps a flat normal and its own color) and 36 indices.
// Size is applied by the model matrix.
func Box() *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		base := uint32(len(m.Vertices))
		center := f.normal.Scale(0.5)
		for _, c := range corners {
			pos := center.Add(f.u.Scale(c[0] * 0.5)).Add(f.v.Scale(c[1] * 0.5))
			m.Vertices = append(m.Vertices, Vertex{Position: pos, Color: f.color, Normal: f.normal})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return m
}
