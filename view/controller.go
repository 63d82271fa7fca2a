package view

import "github.com/go-gl/mathgl/mgl64"

// Direction is a logical pan key. The window layer decodes whatever
// physical keys it likes into these.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

const (
	zoomInFactor  = 0.9
	zoomOutFactor = 1.1
	keyPanStep    = 0.01 // fraction of Scale per frame per held key
)

// Controller turns decoded pointer, wheel and key events into View
// mutations. It exclusively owns the drag state and the held-key set;
// nothing else reads or writes them.
type Controller struct {
	view *View

	width  int
	height int

	dragging bool
	lastPos  mgl64.Vec2

	held [4]bool
}

func NewController(v *View, width, height int) *Controller {
	return &Controller{
		view:   v,
		width:  width,
		height: height,
	}
}

// Resize records the new surface size. Event math uses the recorded
// size, so this must be called before events arrive for a resized
// surface.
func (c *Controller) Resize(width, height int) {
	c.width, c.height = width, height
}

func (c *Controller) aspect() float64 {
	return float64(c.width) / float64(c.height)
}

// Zoom scales the view about the pointer at (px, py) in surface
// pixels. A negative delta zooms in by 0.9, a positive one zooms out
// by 1.1; only the sign of delta is used. The plane point under the
// pointer is solved for again under the new scale so it stays put.
func (c *Controller) Zoom(px, py, delta float64) {
	if delta == 0 {
		return
	}

	norm := mgl64.Vec2{px / float64(c.width), py / float64(c.height)}
	anchor := c.view.PlanePoint(norm, c.aspect())

	if delta < 0 {
		c.view.Scale *= zoomInFactor
	} else {
		c.view.Scale *= zoomOutFactor
	}

	c.view.Center[0] = anchor[0] - c.view.Bucket[0] - (norm[0]-0.5)*c.view.Scale
	c.view.Center[1] = anchor[1] - c.view.Bucket[1] - (norm[1]-0.5)*c.view.Scale/c.aspect()
	c.view.Recenter()
}

// PointerDown begins a drag at (px, py).
func (c *Controller) PointerDown(px, py float64) {
	c.dragging = true
	c.lastPos = mgl64.Vec2{px, py}
}

// PointerMove pans by the motion since the last sampled position while
// a drag is active. Screen Y grows downward and the imaginary axis
// grows upward, hence the inverted vertical sign.
func (c *Controller) PointerMove(px, py float64) {
	if !c.dragging {
		return
	}

	dx := px - c.lastPos[0]
	dy := py - c.lastPos[1]
	c.lastPos = mgl64.Vec2{px, py}

	c.view.Center[0] -= dx / float64(c.width) * c.view.Scale
	c.view.Center[1] += dy / float64(c.height) * c.view.Scale
	c.view.Recenter()
}

// PointerUp ends the drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// PointerLeave ends the drag; release events after the pointer has
// left the surface are never delivered.
func (c *Controller) PointerLeave() {
	c.dragging = false
}

// KeyDown marks a pan key held.
func (c *Controller) KeyDown(d Direction) {
	c.held[d] = true
}

// KeyUp releases a pan key.
func (c *Controller) KeyUp(d Direction) {
	c.held[d] = false
}

// StepKeys applies one frame of panning for every held key. Opposite
// keys cancel and diagonals compose since each held key contributes
// independently.
func (c *Controller) StepKeys() {
	step := c.view.Scale * keyPanStep

	if c.held[Left] {
		c.view.Center[0] -= step
	}
	if c.held[Right] {
		c.view.Center[0] += step
	}
	if c.held[Up] {
		c.view.Center[1] += step
	}
	if c.held[Down] {
		c.view.Center[1] -= step
	}
	c.view.Recenter()
}
