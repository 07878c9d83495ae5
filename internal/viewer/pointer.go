package viewer

// Pointer is the raw mouse state for one frame, in scene-image pixels.
type Pointer struct {
	X, Y     float32
	LeftDown bool
	Wheel    float32
	// Hovered is true when the pointer is over the scene rather than a panel.
	Hovered bool
}

// pointerState derives per-frame edges and deltas from successive Pointers.
type pointerState struct {
	Pointer

	DeltaX, DeltaY float32
	Pressed        bool // left button went down this frame
	Released       bool // left button went up this frame

	prevDown bool
	prevX    float32
	prevY    float32
	seen     bool
}

// update folds in the next frame's pointer.
func (s *pointerState) update(p Pointer) {
	s.Pointer = p
	if s.seen {
		s.DeltaX = p.X - s.prevX
		s.DeltaY = p.Y - s.prevY
	}
	s.Pressed = p.LeftDown && !s.prevDown
	s.Released = !p.LeftDown && s.prevDown

	s.prevDown = p.LeftDown
	s.prevX = p.X
	s.prevY = p.Y
	s.seen = true
}
