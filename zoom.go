package fractals

// ZoomController rescales a rectangle by a fixed factor per scroll tick.
type ZoomController struct {
	// Factor is the multiplicative scale per tick. Must be > 1.
	Factor float64
}

// Apply rescales base around its own center and returns the result with the
// aspect lock reapplied. Only the sign of delta is used: a positive delta
// grows each span by Factor (zoom out), a negative delta shrinks it by Factor
// (zoom in). A zero delta returns base unchanged.
//
// The anchor is the center of base, which the caller passes as the pan
// baseline. It is not the cursor position.
func (z ZoomController) Apply(base Bounds, s Surface, delta float64) Bounds {
	if delta == 0 {
		return base
	}
	cre, cim := base.Center()

	scale := func(v, anchor float64) float64 {
		if delta < 0 {
			return (v-anchor)/z.Factor + anchor
		}
		return (v-anchor)*z.Factor + anchor
	}

	out := Bounds{
		MinRe: scale(base.MinRe, cre),
		MaxRe: scale(base.MaxRe, cre),
		MinIm: scale(base.MinIm, cim),
		MaxIm: scale(base.MaxIm, cim),
	}
	return LockAspect(out, s)
}
