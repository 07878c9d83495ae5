package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/shapelab/internal/engine/camera"
	"github.com/Faultbox/shapelab/internal/shape"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// Sizer is implemented by shapes with a single edge length.
type Sizer interface {
	Size() float32
	SetSize(size float32)
}

// Ringed is implemented by shapes described by an outer and inner radius.
type Ringed interface {
	OuterRadius() float32
	SetOuterRadius(r float32)
	InnerRadius() float32
	SetInnerRadius(r float32)
}

// Panel value ranges.
const (
	positionLimit = 10
	minSize       = 0.1
	maxSize       = 5
	minOuterDiam  = 0.2
	maxOuterDiam  = 5
	minInnerDiam  = 0.1
	ringGap       = 0.1
	maxSpeed      = 100
)

// FPSOverlay renders the frame rate in the top-left corner.
func FPSOverlay(framerate float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowBgAlpha(0.35)
	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoNav | imgui.WindowFlagsNoInputs
	if imgui.BeginV("##FPS", nil, flags) {
		imgui.Text(fmt.Sprintf("%.1f FPS", framerate))
		if framerate > 0 {
			imgui.Text(fmt.Sprintf("%.2f ms", 1000/framerate))
		}
	}
	imgui.End()
}

// WindowInfo is the size readout shown in the camera panel.
type WindowInfo struct {
	PixelWidth, PixelHeight     int
	LogicalWidth, LogicalHeight int
}

// CameraPanel renders the camera controls. It returns true when the user
// asked to save the current settings.
func CameraPanel(cam *camera.OrbitCamera, info WindowInfo) (save bool) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 70), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	if imgui.BeginV("Camera Controls", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.Text("Mouse Controls:")
		imgui.BulletText("Left-click + drag to rotate camera")
		imgui.BulletText("Click a shape and drag to rotate it")
		imgui.BulletText("Scroll wheel to zoom in/out")
		imgui.Separator()

		imgui.SliderFloatV("Mouse Sensitivity", &cam.Sensitivity, 0.05, 1.0, "%.2f", imgui.SliderFlagsNone)

		distance := cam.Distance
		if imgui.SliderFloatV("Camera Distance", &distance, cam.MinDistance, cam.MaxDistance, "%.2f", imgui.SliderFlagsNone) {
			cam.SetDistance(distance)
		}
		yaw := cam.Yaw
		if imgui.SliderFloatV("Camera Yaw", &yaw, 0, 360, "%.1f", imgui.SliderFlagsNone) {
			cam.SetYaw(yaw)
		}
		pitch := cam.Pitch
		if imgui.SliderFloatV("Camera Pitch", &pitch, -camera.MaxPitch, camera.MaxPitch, "%.1f", imgui.SliderFlagsNone) {
			cam.SetPitch(pitch)
		}

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Window Size (pixels): %dx%d", info.PixelWidth, info.PixelHeight))
		imgui.Text(fmt.Sprintf("Window Size (logical): %dx%d", info.LogicalWidth, info.LogicalHeight))

		imgui.Separator()
		save = imgui.Button("Save Config")
		imgui.SameLine()
		imgui.TextDisabled("(F12: screenshot, Esc: quit)")
	}
	imgui.End()
	return save
}

// ShapePanel renders the controls for one shape while its panel is visible.
// Closing the window hides the panel until the shape is picked again.
func ShapePanel(s shape.Shape) {
	if !s.PanelVisible() {
		return
	}

	open := true
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 0), imgui.CondFirstUseEver)
	if imgui.BeginV(s.Name(), &open, imgui.WindowFlagsNone) {
		imgui.Text("Position:")
		pos := s.Position().Array()
		if imgui.DragFloat3V("##pos", &pos, 0.1, -positionLimit, positionLimit, "%.2f", imgui.SliderFlagsNone) {
			s.SetPosition(math.Vec3FromArray(pos))
		}

		imgui.Text("Rotation:")
		rot := s.Rotation().Array()
		if imgui.DragFloat3V("##rot", &rot, 1.0, 0, 360, "%.1f", imgui.SliderFlagsNone) {
			s.SetRotation(math.Vec3FromArray(rot))
		}

		switch v := s.(type) {
		case Sizer:
			size := v.Size()
			if imgui.SliderFloatV("Size", &size, minSize, maxSize, "%.2f", imgui.SliderFlagsNone) {
				v.SetSize(size)
			}
		case Ringed:
			ringControls(v)
		}

		color := s.Color().Array()
		if imgui.ColorEdit3("Color", &color) {
			s.SetColor(mesh.ColorFromArray(color))
		}

		imgui.Separator()
		autoRotate := s.AutoRotate()
		if imgui.Checkbox("Auto Rotate", &autoRotate) {
			s.SetAutoRotate(autoRotate)
		}
		if autoRotate {
			speed := s.RotationSpeed()
			if imgui.SliderFloatV("Rotation Speed", &speed, 0, maxSpeed, "%.1f", imgui.SliderFlagsNone) {
				s.SetRotationSpeed(speed)
			}
		}
	}
	imgui.End()

	if !open {
		s.SetPanelVisible(false)
	}
}

// ringControls edits diameters; the shape keeps outer > inner itself.
func ringControls(r Ringed) {
	imgui.Separator()
	imgui.Text("Dimensions:")

	outer := r.OuterRadius() * 2
	if imgui.SliderFloatV("Outer Diameter", &outer, minOuterDiam, maxOuterDiam, "%.2f", imgui.SliderFlagsNone) {
		r.SetOuterRadius(outer / 2)
	}

	inner := r.InnerRadius() * 2
	maxInner := max(r.OuterRadius()*2-ringGap, minInnerDiam)
	if imgui.SliderFloatV("Inner Diameter", &inner, minInnerDiam, maxInner, "%.2f", imgui.SliderFlagsNone) {
		r.SetInnerRadius(inner / 2)
	}
}

// StatusMessage renders a short notification near the bottom of the screen.
func StatusMessage(msg string, width, height float32) {
	msgWidth := float32(360)
	imgui.SetNextWindowPos(imgui.NewVec2((width-msgWidth)/2, height-60))
	imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##Status", nil, flags) {
		imgui.TextColored(imgui.NewVec4(0.2, 1.0, 0.2, 1.0), msg)
	}
	imgui.End()
}
