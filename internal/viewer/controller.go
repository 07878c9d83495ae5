package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/engine/camera"
	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/internal/shape"
)

// Picker finds the shape nearest along a ray.
type Picker interface {
	Pick(r picking.Ray) (shape.Shape, float32, bool)
}

// DefaultDragGain scales object rotation relative to camera drag.
const DefaultDragGain = 2

// Controller maps mouse input onto the camera and the scene.
//
// A left click over the scene picks the closest shape and opens its panel.
// Dragging after a hit rotates that shape in screen space; dragging after a
// miss orbits the camera. Releasing the button drops the target. The wheel
// zooms while the pointer is over the scene.
type Controller struct {
	cam      *camera.OrbitCamera
	scene    Picker
	dragGain float32

	pointer  pointerState
	dragging bool
	target   shape.Shape
}

// NewController creates a controller. A non-positive dragGain uses DefaultDragGain.
func NewController(cam *camera.OrbitCamera, scene Picker, dragGain float32) *Controller {
	if dragGain <= 0 {
		dragGain = DefaultDragGain
	}
	return &Controller{cam: cam, scene: scene, dragGain: dragGain}
}

// Target returns the shape being dragged, or nil.
func (c *Controller) Target() shape.Shape {
	return c.target
}

// Dragging reports whether a drag that began over the scene is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Update processes one frame of input for a width×height scene view.
func (c *Controller) Update(p Pointer, width, height float32) {
	c.pointer.update(p)
	ps := &c.pointer

	switch {
	case ps.Pressed && ps.Hovered:
		c.dragging = true
		c.pick(ps.X, ps.Y, width, height)
	case ps.Released:
		c.dragging = false
		c.target = nil
	case ps.LeftDown && c.dragging && (ps.DeltaX != 0 || ps.DeltaY != 0):
		c.drag(ps.DeltaX, ps.DeltaY)
	}

	if ps.Wheel != 0 && ps.Hovered {
		c.cam.HandleZoom(ps.Wheel)
	}
}

func (c *Controller) pick(x, y, width, height float32) {
	c.target = nil
	if width <= 0 || height <= 0 {
		return
	}
	ray := c.cam.PickRay(x, y, width, height)
	hit, dist, ok := c.scene.Pick(ray)
	if !ok {
		return
	}
	c.target = hit
	hit.SetPanelVisible(true)
	logger.Debug("shape picked",
		zap.String("name", hit.Name()),
		zap.Float32("distance", dist))
}

func (c *Controller) drag(dx, dy float32) {
	if c.target == nil {
		c.cam.HandleDrag(dx, dy)
		return
	}
	right, up := c.cam.Basis()
	gain := c.cam.Sensitivity * c.dragGain
	c.target.RotateScreenSpace(dx*gain, dy*gain, right, up)
}
