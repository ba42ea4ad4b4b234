package fractals

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	overlayW        = 240
	overlayH        = 64
	overlayFade     = 2.0 // seconds from fully shown to hidden
	overlayFPSEvery = 0.5 // seconds between FPS refreshes
)

// Overlay is a small HUD in the top-left corner that shows the current
// bounds and step. It appears whenever the view changes and fades out once
// the view holds still. With showFPS set it stays visible and adds the
// measured frame rate.
type Overlay struct {
	showFPS  bool
	alpha    float32
	fade     *gween.Tween
	text     string
	dirty    bool
	sinceFPS float64
	img      *ebiten.Image
	op       ebiten.DrawImageOptions
}

// NewOverlay returns a hidden overlay.
func NewOverlay(showFPS bool) *Overlay {
	return &Overlay{showFPS: showFPS}
}

// Alpha returns the current opacity in [0, 1].
func (o *Overlay) Alpha() float32 { return o.alpha }

// Text returns the text the overlay shows.
func (o *Overlay) Text() string { return o.text }

// Update advances the fade by dt seconds. If changed is true the text is
// refreshed from f and the fade restarts from fully opaque.
func (o *Overlay) Update(dt float64, changed bool, f FrameUniforms) {
	if changed {
		o.setText(f)
		o.alpha = 1
		// InQuad holds near-opaque for most of the duration, then drops.
		o.fade = gween.New(1, 0, overlayFade, ease.InQuad)
	}

	if o.showFPS {
		o.alpha = 1
		o.sinceFPS += dt
		if o.sinceFPS >= overlayFPSEvery {
			o.sinceFPS = 0
			o.setText(f)
		}
		return
	}

	if o.fade != nil && !changed {
		a, done := o.fade.Update(float32(dt))
		o.alpha = a
		if done {
			o.alpha = 0
			o.fade = nil
		}
	}
}

func (o *Overlay) setText(f FrameUniforms) {
	text := fmt.Sprintf("re [%.6g, %.6g]\nim [%.6g, %.6g]\nstep %.3g x %.3g",
		f.MinRe, f.MaxRe, f.MinIm, f.MaxIm, f.StepRe, f.StepIm)
	if o.showFPS {
		text += fmt.Sprintf("\nFPS: %.1f", ebiten.ActualFPS())
	}
	if text != o.text {
		o.text = text
		o.dirty = true
	}
}

// Draw composites the overlay onto screen. The text image is re-rendered
// only when the text changed.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.alpha <= 0 {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(overlayW, overlayH)
		o.dirty = true
	}
	if o.dirty {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
		o.dirty = false
	}
	o.op.ColorScale.Reset()
	o.op.ColorScale.ScaleAlpha(o.alpha)
	screen.DrawImage(o.img, &o.op)
}
