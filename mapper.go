package fractals

// Pure conversions between pixel and complex-plane coordinates.
//
// A pixel coordinate p along an axis of n pixels maps to min + p*step, where
// step = span/(n-1). Pixel 0 lands exactly on min and pixel n-1 exactly on
// max, so the four surface corners map to the four rectangle corners.

const (
	initialMinRe = -2.0
	initialMaxRe = 2.0
)

// InitialBounds returns the startup view for s: re in [-2, 2], with the
// imaginary span derived by the aspect lock and centered on zero.
func InitialBounds(s Surface) Bounds {
	b := LockAspect(Bounds{MinRe: initialMinRe, MaxRe: initialMaxRe}, s)
	half := b.SpanIm() / 2
	b.MinIm = -half
	b.MaxIm = half
	return b
}

// StepFor returns the per-pixel step of b on a surface of size s.
func StepFor(b Bounds, s Surface) (stepRe, stepIm float64) {
	return b.SpanRe() / float64(s.Width-1), b.SpanIm() / float64(s.Height-1)
}

// LockAspect recomputes MaxIm from MinIm so the imaginary span equals the real
// span scaled by the surface aspect. The real span is authoritative.
func LockAspect(b Bounds, s Surface) Bounds {
	b.MaxIm = b.MinIm + b.SpanRe()*float64(s.Height)/float64(s.Width)
	return b
}

// PixelToPlane maps the pixel (px, py) into b.
func PixelToPlane(b Bounds, s Surface, px, py float64) (re, im float64) {
	stepRe, stepIm := StepFor(b, s)
	return b.MinRe + px*stepRe, b.MinIm + py*stepIm
}

// PlaneToPixel is the inverse of PixelToPlane.
func PlaneToPixel(b Bounds, s Surface, re, im float64) (px, py float64) {
	stepRe, stepIm := StepFor(b, s)
	return (re - b.MinRe) / stepRe, (im - b.MinIm) / stepIm
}
