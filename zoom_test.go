package fractals

import (
	"math"
	"testing"
)

func TestZoomPositiveDeltaGrowsSpan(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	got := z.Apply(InitialBounds(surface800), surface800, 1)

	want := Bounds{MinRe: -2.1, MaxRe: 2.1, MinIm: -1.575, MaxIm: 1.575}
	if diff := diffBounds(want, got); diff != "" {
		t.Errorf("zoom +1 mismatch (-want +got):\n%s", diff)
	}
	if !approxEqual(got.SpanRe(), 4*1.05, epsilon) {
		t.Errorf("re span = %f, want %f", got.SpanRe(), 4*1.05)
	}
	if !approxEqual(got.SpanIm(), 3*1.05, epsilon) {
		t.Errorf("im span = %f, want %f", got.SpanIm(), 3*1.05)
	}
}

func TestZoomNegativeDeltaShrinksSpan(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	got := z.Apply(InitialBounds(surface800), surface800, -1)
	if !approxEqual(got.SpanRe(), 4/1.05, epsilon) {
		t.Errorf("re span = %f, want %f", got.SpanRe(), 4/1.05)
	}
	if !approxEqual(got.SpanIm(), 3/1.05, epsilon) {
		t.Errorf("im span = %f, want %f", got.SpanIm(), 3/1.05)
	}
}

func TestZoomUsesSignOnly(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	base := InitialBounds(surface800)
	if a, b := z.Apply(base, surface800, 1), z.Apply(base, surface800, 7.5); a != b {
		t.Errorf("delta 1 = %+v, delta 7.5 = %+v", a, b)
	}
	if a, b := z.Apply(base, surface800, -1), z.Apply(base, surface800, -0.01); a != b {
		t.Errorf("delta -1 = %+v, delta -0.01 = %+v", a, b)
	}
}

func TestZoomZeroDelta(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	base := InitialBounds(surface800)
	if got := z.Apply(base, surface800, 0); got != base {
		t.Errorf("zero delta changed bounds: %+v", got)
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	base := LockAspect(Bounds{MinRe: -0.8, MaxRe: -0.6, MinIm: 0.1}, surface800)
	cre, cim := base.Center()
	got := z.Apply(base, surface800, -1)
	gre, gim := got.Center()
	if !approxEqual(gre, cre, epsilon) || !approxEqual(gim, cim, epsilon) {
		t.Errorf("center moved: (%g,%g) -> (%g,%g)", cre, cim, gre, gim)
	}
}

func TestZoomInversePair(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	base := LockAspect(Bounds{MinRe: -0.8, MaxRe: -0.6, MinIm: 0.1}, surface800)

	b := base
	const ticks = 25
	for i := 0; i < ticks; i++ {
		b = z.Apply(b, surface800, -1)
	}
	for i := 0; i < ticks; i++ {
		b = z.Apply(b, surface800, 1)
	}

	rel := func(got, want float64) float64 {
		return math.Abs(got-want) / math.Max(math.Abs(want), base.SpanRe())
	}
	for _, pair := range [][2]float64{
		{b.MinRe, base.MinRe}, {b.MaxRe, base.MaxRe},
		{b.MinIm, base.MinIm}, {b.MaxIm, base.MaxIm},
	} {
		if r := rel(pair[0], pair[1]); r > 1e-9 {
			t.Errorf("bound %g, want %g (relative error %g)", pair[0], pair[1], r)
		}
	}
}

func TestZoomAspectInvariant(t *testing.T) {
	z := ZoomController{Factor: DefaultZoomFactor}
	for _, s := range []Surface{{800, 600}, {1024, 768}, {500, 1000}} {
		b := InitialBounds(s)
		for i := 0; i < 40; i++ {
			delta := 1.0
			if i%3 != 0 {
				delta = -1
			}
			b = z.Apply(b, s, delta)
			if !aspectHolds(b, s) {
				t.Fatalf("%v tick %d: aspect broken: %+v", s, i, b)
			}
		}
	}
}
