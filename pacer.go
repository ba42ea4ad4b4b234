package fractals

import "time"

// Clock abstracts time for the Pacer so tests can run without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Pacer holds the loop to a fixed frame period. An iteration runs from the
// moment the previous Wait returned to the end of the next Wait, so time
// spent outside Update and Draw (the buffer swap, a vsync wait) counts
// toward the frame. A late frame is never skipped or caught up; the next
// frame simply starts late.
type Pacer struct {
	period time.Duration
	clock  Clock
	start  time.Time

	lastElapsed time.Duration
	lastSleep   time.Duration
	lastFrame   time.Duration
}

// NewPacer returns a Pacer targeting fps frames per second. A nil clock uses
// the system clock.
func NewPacer(fps int, clock Clock) *Pacer {
	if clock == nil {
		clock = systemClock{}
	}
	return &Pacer{
		period: time.Second / time.Duration(fps),
		clock:  clock,
	}
}

// Period returns the target frame period.
func (p *Pacer) Period() time.Duration { return p.period }

// Begin marks the start of the first iteration. Later calls are no-ops:
// once running, each iteration starts when the previous Wait returns.
func (p *Pacer) Begin() {
	if p.start.IsZero() {
		p.start = p.clock.Now()
	}
}

// Wait blocks for the remainder of the period, if any, and returns how long
// it slept.
func (p *Pacer) Wait() time.Duration {
	if p.start.IsZero() {
		p.start = p.clock.Now()
	}
	p.lastElapsed = p.clock.Now().Sub(p.start)
	p.lastSleep = 0
	if p.lastElapsed < p.period {
		p.lastSleep = p.period - p.lastElapsed
		p.clock.Sleep(p.lastSleep)
	}
	end := p.clock.Now()
	p.lastFrame = end.Sub(p.start)
	p.start = end
	return p.lastSleep
}

// LastElapsed returns the work time measured by the last Wait.
func (p *Pacer) LastElapsed() time.Duration { return p.lastElapsed }

// LastFrame returns the start-to-start length of the last finished
// iteration, or zero before the first Wait.
func (p *Pacer) LastFrame() time.Duration { return p.lastFrame }
