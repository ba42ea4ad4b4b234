package fractals

// Injector is the InputSource used by the Viewer. It reads real input from
// its RawSource unless synthetic frames are queued, in which case it consumes
// exactly one queued frame per Poll. Edge detection runs over whichever frame
// was chosen, so synthetic drags produce the same press/release edges as real
// ones.
type Injector struct {
	source  RawSource
	queue   []RawInput
	tracker inputTracker
}

// NewInjector returns an Injector reading from src when its queue is empty.
func NewInjector(src RawSource) *Injector {
	return &Injector{source: src}
}

// Poll implements InputSource.
func (j *Injector) Poll() InputSnapshot {
	var r RawInput
	if len(j.queue) > 0 {
		r = j.queue[0]
		copy(j.queue, j.queue[1:])
		j.queue = j.queue[:len(j.queue)-1]
	} else {
		r = j.source.Read()
	}
	return j.tracker.snapshot(r)
}

// Pending returns the number of queued synthetic frames.
func (j *Injector) Pending() int {
	return len(j.queue)
}

// InjectPress queues a frame with the left button down at (x, y).
func (j *Injector) InjectPress(x, y int) {
	j.queue = append(j.queue, RawInput{X: x, Y: y, Left: true})
}

// InjectMove queues a frame with the left button held at (x, y). Use this
// between InjectPress and InjectRelease to simulate a drag.
func (j *Injector) InjectMove(x, y int) {
	j.queue = append(j.queue, RawInput{X: x, Y: y, Left: true})
}

// InjectRelease queues a frame with the left button up at (x, y).
func (j *Injector) InjectRelease(x, y int) {
	j.queue = append(j.queue, RawInput{X: x, Y: y})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, a final held frame at (toX, toY), then a release there.
// The pointer must be held at the end point for the drag to land on it, so
// the sequence consumes frames+1 frames. Minimum frames is 2.
func (j *Injector) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	j.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := float64(fromX) + float64(toX-fromX)*t
		y := float64(fromY) + float64(toY-fromY)*t
		j.InjectMove(int(x), int(y))
	}
	j.InjectMove(toX, toY)
	j.InjectRelease(toX, toY)
}

// InjectScroll queues ticks frames of scroll with the given delta sign at
// (x, y), no button held.
func (j *Injector) InjectScroll(x, y int, delta float64, ticks int) {
	for i := 0; i < ticks; i++ {
		j.queue = append(j.queue, RawInput{X: x, Y: y, Wheel: delta})
	}
}

// InjectQuit queues a frame that requests the loop to end.
func (j *Injector) InjectQuit() {
	j.queue = append(j.queue, RawInput{Quit: true})
}
