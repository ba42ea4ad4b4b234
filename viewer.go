package fractals

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer is the ebiten.Game that runs the navigation loop. One iteration is
// Update (poll input, fold it into navigation state) followed by Draw
// (render, overlay, pace). All input for a frame is gathered before any
// state changes, and all state changes finish before the renderer reads the
// viewport.
type Viewer struct {
	cfg      Config
	nav      *Navigator
	input    *Injector
	runner   *TestRunner
	renderer Renderer
	pacer    *Pacer
	overlay  *Overlay
	clock    Clock

	screenshotQueue []string

	quit        bool
	viewChanged bool
	updateTime  time.Duration
	stats       debugStats
}

// NewViewer returns a Viewer for cfg that draws with renderer. If
// cfg.ScriptPath is set the script is loaded and attached.
func NewViewer(cfg Config, renderer Renderer) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := newViewer(cfg, renderer, ebitenSource{}, systemClock{})
	if cfg.ScriptPath != "" {
		runner, err := LoadTestScriptFile(cfg.ScriptPath)
		if err != nil {
			return nil, &ConfigError{Msg: err.Error()}
		}
		v.SetTestRunner(runner)
	}
	return v, nil
}

func newViewer(cfg Config, renderer Renderer, src RawSource, clock Clock) *Viewer {
	return &Viewer{
		cfg:         cfg,
		nav:         NewNavigator(cfg.Surface(), cfg.ZoomFactor),
		input:       NewInjector(src),
		renderer:    renderer,
		pacer:       NewPacer(cfg.TargetFPS, clock),
		overlay:     NewOverlay(cfg.Debug),
		clock:       clock,
		viewChanged: true,
	}
}

// Navigator returns the viewer's navigation state.
func (v *Viewer) Navigator() *Navigator { return v.nav }

// Injector returns the input queue feeding the viewer.
func (v *Viewer) Injector() *Injector { return v.input }

// Update implements ebiten.Game. A quit request is latched and honored at
// the start of the next iteration, so the iteration that saw it still draws.
func (v *Viewer) Update() error {
	if v.quit {
		return ebiten.Termination
	}
	v.pacer.Begin()
	start := v.clock.Now()

	if v.runner != nil {
		v.runner.step(v)
	}

	in := v.input.Poll()
	if in.Quit {
		v.quit = true
	}
	if in.Screenshot {
		v.Screenshot("view")
	}
	if v.nav.Step(in) {
		v.viewChanged = true
	}

	dt := v.pacer.LastFrame()
	if dt == 0 {
		dt = v.pacer.Period()
	}
	v.overlay.Update(dt.Seconds(), v.viewChanged, v.nav.Frame())
	v.viewChanged = false

	v.updateTime = v.clock.Now().Sub(start)
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	start := v.clock.Now()
	v.renderer.Render(screen, v.nav.Frame())
	v.flushScreenshots(screen)
	v.overlay.Draw(screen)
	v.endFrame(v.clock.Now().Sub(start))
}

// endFrame sleeps out the rest of the frame period and records debug stats.
func (v *Viewer) endFrame(render time.Duration) {
	slept := v.pacer.Wait()
	if v.cfg.Debug && v.stats.add(v.updateTime, render, slept) {
		v.stats.log()
	}
}

// Layout implements ebiten.Game. The logical screen is always the configured
// surface, so cursor positions are surface pixels.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

// Run loads the coloring program, opens the window and blocks until the
// viewer quits or the window is closed.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	prog, err := LoadProgram(cfg.ProgramPath)
	if err != nil {
		return err
	}
	v, err := NewViewer(cfg, NewShaderRenderer(prog))
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("Fractals - " + cfg.ProgramPath)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(cfg.VSync)

	debugf(cfg.Debug, "surface: %dx%d | uniforms: %v | target: %d fps",
		cfg.Width, cfg.Height, prog.Uniforms, cfg.TargetFPS)

	if err := ebiten.RunGame(v); err != nil {
		return &ResourceError{Op: "run graphics loop", Err: err}
	}
	return nil
}
