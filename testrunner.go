package fractals

import (
	"encoding/json"
	"fmt"
	"os"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      int     `json:"x,omitempty"`
	Y      int     `json:"y,omitempty"`
	FromX  int     `json:"fromX,omitempty"`
	FromY  int     `json:"fromY,omitempty"`
	ToX    int     `json:"toX,omitempty"`
	ToY    int     `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, resets and screenshots across frames
// for automated visual testing. Attach to a Viewer via SetTestRunner.
//
// Supported actions: drag, scroll, wait, screenshot, reset, quit.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Viewer via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "drag", "scroll", "wait", "screenshot", "reset", "quit":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses the script at path.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// SetTestRunner attaches a TestRunner to the viewer. The runner's step method
// is called from Viewer.Update before input is polled each frame.
func (v *Viewer) SetTestRunner(runner *TestRunner) {
	v.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Viewer.Update.
func (r *TestRunner) step(v *Viewer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if v.input.Pending() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		v.Screenshot(st.Label)
	case "drag":
		v.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		ticks := st.Ticks
		if ticks < 1 {
			ticks = 1
		}
		delta := st.Delta
		if delta == 0 {
			delta = 1
		}
		v.input.InjectScroll(st.X, st.Y, delta, ticks)
	case "reset":
		v.nav.Reset()
		v.viewChanged = true
	case "quit":
		v.input.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && v.input.Pending() == 0 {
		r.done = true
	}
}
