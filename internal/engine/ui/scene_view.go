package ui

import "github.com/AllenDang/cimgui-go/imgui"

// Mouse is the pointer state sampled for one frame.
type Mouse struct {
	X, Y     float32 // relative to the scene image
	LeftDown bool
	Wheel    float32
	// Hovered is true when the pointer is over the scene and not over a panel.
	Hovered bool
}

// SceneView draws the scene texture behind every other window and samples
// the mouse over it.
func SceneView(textureID uint32, x, y, w, h float32) Mouse {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoNav

	var m Mouse
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		origin := imgui.CursorScreenPos()
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageWithBgV(
			*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1), // UV flipped
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)

		pos := imgui.MousePos()
		m = Mouse{
			X:        pos.X - origin.X,
			Y:        pos.Y - origin.Y,
			LeftDown: imgui.IsMouseDown(imgui.MouseButtonLeft),
			Wheel:    imgui.CurrentIO().MouseWheel(),
			Hovered:  imgui.IsItemHovered(),
		}
	}
	imgui.End()
	imgui.PopStyleVar()
	return m
}
