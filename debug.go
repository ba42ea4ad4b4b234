package fractals

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logOutput receives all [fractals] diagnostics. Tests swap it out.
var logOutput io.Writer = os.Stderr

// logf prints a [fractals]-prefixed line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[fractals] "+format+"\n", args...)
}

// debugf is logf gated on enabled.
func debugf(enabled bool, format string, args ...any) {
	if enabled {
		logf(format, args...)
	}
}

// debugStatsEvery is the number of frames between stat lines.
const debugStatsEvery = 60

// debugStats accumulates per-frame timing. Only populated when Config.Debug
// is true.
type debugStats struct {
	frames     int
	updateTime time.Duration
	renderTime time.Duration
	sleepTime  time.Duration
}

// add records one frame and reports whether a stat line is due.
func (s *debugStats) add(update, render, sleep time.Duration) bool {
	s.frames++
	s.updateTime += update
	s.renderTime += render
	s.sleepTime += sleep
	return s.frames >= debugStatsEvery
}

// log prints the averages over the accumulated frames and resets.
func (s *debugStats) log() {
	if s.frames == 0 {
		return
	}
	n := time.Duration(s.frames)
	work := (s.updateTime + s.renderTime) / n
	rate := 0.0
	if frame := work + s.sleepTime/n; frame > 0 {
		rate = float64(time.Second) / float64(frame)
	}
	logf("update: %v | render: %v | sleep: %v | framerate: %.1f",
		s.updateTime/n, s.renderTime/n, s.sleepTime/n, rate)
	*s = debugStats{}
}
