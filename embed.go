// Package shapelab carries the default shader sources so the viewer runs
// without a shaders/ directory next to it.
package shapelab

import "embed"

// Shaders holds shaders/vertex.glsl and shaders/fragment.glsl.
//
//go:embed shaders/*.glsl
var Shaders embed.FS
