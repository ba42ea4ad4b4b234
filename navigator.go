package fractals

// FrameUniforms is the per-frame snapshot handed to a Renderer: the surface
// resolution, both axis ranges and the per-pixel step.
type FrameUniforms struct {
	Width, Height  int
	MinRe, MaxRe   float64
	MinIm, MaxIm   float64
	StepRe, StepIm float64
}

// Navigator holds all navigation state: the viewport, the pan baseline and
// the zoom factor. It folds one InputSnapshot per frame into that state.
type Navigator struct {
	surface Surface
	view    Viewport
	pan     PanController
	zoom    ZoomController
}

// NewNavigator returns a Navigator showing InitialBounds(s).
func NewNavigator(s Surface, zoomFactor float64) *Navigator {
	n := &Navigator{
		surface: s,
		zoom:    ZoomController{Factor: zoomFactor},
	}
	n.Reset()
	return n
}

// Reset restores the startup view and ends any drag in progress.
func (n *Navigator) Reset() {
	b := InitialBounds(n.surface)
	n.view = newViewport(b, n.surface)
	n.pan = newPanController(b)
}

// Surface returns the surface size.
func (n *Navigator) Surface() Surface { return n.surface }

// Viewport returns the current viewport.
func (n *Navigator) Viewport() Viewport { return n.view }

// Baseline returns the pan baseline. Equal to Viewport().Bounds outside a drag.
func (n *Navigator) Baseline() Bounds { return n.pan.Baseline() }

// PanState returns the pan state computed by the last Step.
func (n *Navigator) PanState() PanState { return n.pan.State() }

// Step applies one frame of input: zoom, then pan, then the step recompute.
// It returns true if the visible rectangle changed.
func (n *Navigator) Step(in InputSnapshot) bool {
	before := n.view.Bounds
	view := before

	// Zoom is disabled while any button is held or was held last frame.
	if in.Wheel != 0 && !in.AnyHeld() {
		view = n.zoom.Apply(n.pan.Baseline(), n.surface, in.Wheel)
		n.pan.sync(view)
	}

	view = n.pan.Update(view, n.surface, in.PrevLeft, in.Left, float64(in.X), float64(in.Y))

	n.view.set(view, n.surface)
	return n.view.Bounds != before
}

// Frame returns the renderer snapshot for the current viewport.
func (n *Navigator) Frame() FrameUniforms {
	v := n.view
	return FrameUniforms{
		Width:  n.surface.Width,
		Height: n.surface.Height,
		MinRe:  v.MinRe,
		MaxRe:  v.MaxRe,
		MinIm:  v.MinIm,
		MaxIm:  v.MaxIm,
		StepRe: v.StepRe,
		StepIm: v.StepIm,
	}
}
