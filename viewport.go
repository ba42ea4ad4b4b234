package fractals

// Surface is the drawable size in pixels. It is fixed for the lifetime of a
// Viewer once established at startup.
type Surface struct {
	Width, Height int
}

// Aspect returns height / width.
func (s Surface) Aspect() float64 {
	return float64(s.Height) / float64(s.Width)
}

// Bounds is a rectangle in complex-plane coordinates. Re runs along the
// screen X axis and Im along the screen Y axis (downward).
type Bounds struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

// SpanRe returns the width of the rectangle along the real axis.
func (b Bounds) SpanRe() float64 { return b.MaxRe - b.MinRe }

// SpanIm returns the height of the rectangle along the imaginary axis.
func (b Bounds) SpanIm() float64 { return b.MaxIm - b.MinIm }

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() (re, im float64) {
	return b.MinRe + b.SpanRe()/2, b.MinIm + b.SpanIm()/2
}

// Shift returns the rectangle translated by -(dre, dim).
func (b Bounds) Shift(dre, dim float64) Bounds {
	return Bounds{
		MinRe: b.MinRe - dre,
		MaxRe: b.MaxRe - dre,
		MinIm: b.MinIm - dim,
		MaxIm: b.MaxIm - dim,
	}
}

// Viewport is the currently visible rectangle plus the per-pixel step derived
// from it. Only the zoom and pan controllers mutate it, through Navigator.
type Viewport struct {
	Bounds
	// StepRe and StepIm are the plane distance covered by one pixel.
	StepRe, StepIm float64
}

// newViewport builds a Viewport for b and derives its step for s.
func newViewport(b Bounds, s Surface) Viewport {
	vp := Viewport{Bounds: b}
	vp.recompute(s)
	return vp
}

// set replaces the bounds and recomputes the step.
func (vp *Viewport) set(b Bounds, s Surface) {
	vp.Bounds = b
	vp.recompute(s)
}

func (vp *Viewport) recompute(s Surface) {
	vp.StepRe, vp.StepIm = StepFor(vp.Bounds, s)
}
