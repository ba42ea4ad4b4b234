// Package fractals is an interactive viewer for per-pixel coloring programs
// over the complex plane, built on [Ebitengine].
//
// A coloring program is a Kage shader. Each frame the viewer binds four vec2
// uniforms describing the visible rectangle and draws the program over the
// whole surface:
//
//	var Resolution vec2 // surface width, height in pixels
//	var Real vec2       // MinRe, MaxRe
//	var Imag vec2       // MinIm, MaxIm
//	var Factor vec2     // per-pixel step along each axis
//
// The plane coordinate of a pixel is (Real.x + x*Factor.x, Imag.x + y*Factor.y).
//
// # Navigation
//
// Dragging with the left button pans the view; the content follows the
// pointer. The scroll wheel rescales the view by [Config.ZoomFactor] per tick
// around the center of the current view. Scrolling while a button is held is
// ignored.
//
// All navigation state lives in a [Navigator]. It is a plain value with no
// Ebitengine dependency, so it can be driven directly:
//
//	nav := fractals.NewNavigator(fractals.Surface{Width: 800, Height: 600}, 1.05)
//	nav.Step(fractals.InputSnapshot{RawInput: fractals.RawInput{Wheel: -1}})
//	f := nav.Frame()
//
// # Running
//
// [Run] opens a window and blocks:
//
//	cfg, err := fractals.ParseArgs(os.Args[1:])
//	if err == nil {
//		err = fractals.Run(cfg)
//	}
//	os.Exit(fractals.ExitCode(err))
//
// Scripts loaded with [LoadTestScript] drive the viewer with synthetic input
// for automated visual checks.
//
// [Ebitengine]: https://ebitengine.org
package fractals
