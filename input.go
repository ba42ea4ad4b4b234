package fractals

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Per-frame input ---

// RawInput is the input state read for one frame, before edge detection.
type RawInput struct {
	// X and Y are the pointer position in surface pixels.
	X, Y int
	// Left and Right are the held-state of the mouse buttons.
	Left, Right bool
	// Wheel is the vertical scroll delta accumulated this frame.
	Wheel float64
	// Quit requests the loop to end after the current iteration.
	Quit bool
	// Screenshot requests a capture of the rendered frame.
	Screenshot bool
}

// InputSnapshot is the immutable input record for one frame. It carries the
// previous frame's button state so press and release edges can be derived
// without further bookkeeping at the call site.
type InputSnapshot struct {
	RawInput
	PrevLeft, PrevRight bool
}

// AnyHeld reports whether a button is held this frame or was held last frame.
func (in InputSnapshot) AnyHeld() bool {
	return in.Left || in.Right || in.PrevLeft || in.PrevRight
}

// RawSource reads the raw input for the current frame.
type RawSource interface {
	Read() RawInput
}

// InputSource produces one InputSnapshot per frame.
type InputSource interface {
	Poll() InputSnapshot
}

// inputTracker remembers the last frame's button state.
type inputTracker struct {
	prevLeft  bool
	prevRight bool
}

// snapshot pairs r with the previous held-state and records r's for the next
// frame.
func (t *inputTracker) snapshot(r RawInput) InputSnapshot {
	in := InputSnapshot{RawInput: r, PrevLeft: t.prevLeft, PrevRight: t.prevRight}
	t.prevLeft = r.Left
	t.prevRight = r.Right
	return in
}

// --- Ebitengine source ---

// ebitenSource reads mouse and keyboard state from Ebitengine.
type ebitenSource struct{}

// Read implements RawSource.
func (ebitenSource) Read() RawInput {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	return RawInput{
		X:          mx,
		Y:          my,
		Left:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Wheel:      wheelY,
		Quit:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF12),
	}
}
