package fractals

import (
	"math"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-12

var surface800 = Surface{Width: 800, Height: 600}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// approxBounds compares float fields with an absolute margin of epsilon.
var approxBounds = cmpopts.EquateApprox(0, epsilon)

func diffBounds(want, got Bounds) string {
	return cmp.Diff(want, got, approxBounds)
}

// aspectHolds reports whether b satisfies the aspect lock for s.
func aspectHolds(b Bounds, s Surface) bool {
	return approxEqual(b.SpanIm(), b.SpanRe()*s.Aspect(), epsilon)
}

// frameDriver feeds raw frames through edge detection into a Navigator.
type frameDriver struct {
	nav     *Navigator
	tracker inputTracker
}

func newFrameDriver(s Surface) *frameDriver {
	return &frameDriver{nav: NewNavigator(s, DefaultZoomFactor)}
}

func (d *frameDriver) frame(r RawInput) bool {
	return d.nav.Step(d.tracker.snapshot(r))
}

// drag presses at from, moves through the midpoint to to, and releases there.
func (d *frameDriver) drag(fromX, fromY, toX, toY int) {
	d.frame(RawInput{X: fromX, Y: fromY, Left: true})
	d.frame(RawInput{X: (fromX + toX) / 2, Y: (fromY + toY) / 2, Left: true})
	d.frame(RawInput{X: toX, Y: toY, Left: true})
	d.frame(RawInput{X: toX, Y: toY})
}

func (d *frameDriver) scroll(delta float64, ticks int) {
	for i := 0; i < ticks; i++ {
		d.frame(RawInput{X: 10, Y: 10, Wheel: delta})
	}
}

// fakeClock advances only when told to or when slept on.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptedSource replays frames, then reports an idle pointer.
type scriptedSource struct {
	frames []RawInput
}

func (s *scriptedSource) Read() RawInput {
	if len(s.frames) == 0 {
		return RawInput{}
	}
	r := s.frames[0]
	s.frames = s.frames[1:]
	return r
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ProgramPath = "programs/mandelbrot.kage"
	return cfg
}
