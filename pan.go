package fractals

// PanState is the drag state of the pan button for one frame.
type PanState uint8

const (
	PanIdle         PanState = iota // button up this frame and last frame
	PanJustPressed                  // button went down this frame
	PanDragging                     // button held this frame and last frame
	PanJustReleased                 // button went up this frame
)

// String returns the state name.
func (s PanState) String() string {
	switch s {
	case PanIdle:
		return "idle"
	case PanJustPressed:
		return "just-pressed"
	case PanDragging:
		return "dragging"
	case PanJustReleased:
		return "just-released"
	default:
		return "unknown"
	}
}

// panStateFor derives the state from last frame's and this frame's
// held-state of the pan button.
func panStateFor(prev, cur bool) PanState {
	switch {
	case !prev && cur:
		return PanJustPressed
	case prev && cur:
		return PanDragging
	case prev && !cur:
		return PanJustReleased
	default:
		return PanIdle
	}
}

// PanController implements drag-to-pan against a baseline rectangle that is
// fixed for the duration of a drag.
type PanController struct {
	baseline Bounds
	anchorRe float64
	anchorIm float64
	state    PanState
}

// newPanController returns a controller whose baseline equals view.
func newPanController(view Bounds) PanController {
	return PanController{baseline: view}
}

// Baseline returns the rectangle the current or next drag measures against.
func (p *PanController) Baseline() Bounds {
	return p.baseline
}

// State returns the state computed by the last Update.
func (p *PanController) State() PanState {
	return p.state
}

// Dragging reports whether a drag is in progress.
func (p *PanController) Dragging() bool {
	return p.state == PanJustPressed || p.state == PanDragging
}

// sync sets the baseline to view. Used when the view changes outside a drag.
func (p *PanController) sync(view Bounds) {
	p.baseline = view
}

// Update runs one frame of the state machine and returns the new view.
// (px, py) is the pointer position in pixels.
//
// While dragging, the pointer is mapped against the fixed baseline rather
// than the moving view, and the view is rebuilt from the baseline each frame.
// The offset therefore depends only on the pixel distance from the press
// point and cannot accumulate drift.
func (p *PanController) Update(view Bounds, s Surface, prev, cur bool, px, py float64) Bounds {
	p.state = panStateFor(prev, cur)

	switch p.state {
	case PanJustPressed:
		p.baseline = view
		p.anchorRe, p.anchorIm = PixelToPlane(view, s, px, py)
		return view
	case PanDragging:
		re, im := PixelToPlane(p.baseline, s, px, py)
		return p.baseline.Shift(re-p.anchorRe, im-p.anchorIm)
	case PanJustReleased:
		p.baseline = view
		return view
	default:
		return view
	}
}
