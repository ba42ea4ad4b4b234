package fractals

import (
	"errors"
	"fmt"
)

// Process exit codes. Every error a Viewer can return is terminal.
//
// ExitGraphicsInit covers graphics init as well as window and context
// creation. Ebitengine reports all three as one RunGame error, so they share
// a code.
const (
	ExitOK           = 0
	ExitGraphicsInit = 1 // graphics, window or context init failed
	ExitProgramIO    = 3 // coloring program missing or unreadable
	ExitCompile      = 5 // coloring program failed to compile
	ExitLink         = 6 // coloring program failed the link check
	ExitUsage        = 7 // bad arguments
)

// ConfigError reports bad command-line arguments or option values.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// ResourceError reports a failure to create the window or graphics context.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ProgramErrorKind classifies a ProgramError.
type ProgramErrorKind uint8

const (
	ProgramIO      ProgramErrorKind = iota // file missing or unreadable
	ProgramCompile                         // Kage compile failure
	ProgramLink                            // entry point or uniform mismatch
)

// ProgramError reports a coloring program that cannot be used.
type ProgramError struct {
	Kind ProgramErrorKind
	Path string
	Err  error
}

func (e *ProgramError) Error() string {
	switch e.Kind {
	case ProgramIO:
		return fmt.Sprintf("Could not load %q.", e.Path)
	case ProgramCompile:
		return fmt.Sprintf("Could not compile coloring program %q.", e.Path)
	default:
		return fmt.Sprintf("Could not link coloring program %q.", e.Path)
	}
}

func (e *ProgramError) Unwrap() error { return e.Err }

// Detail returns the underlying diagnostic, verbatim.
func (e *ProgramError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitUsage
	}
	var progErr *ProgramError
	if errors.As(err, &progErr) {
		switch progErr.Kind {
		case ProgramIO:
			return ExitProgramIO
		case ProgramCompile:
			return ExitCompile
		default:
			return ExitLink
		}
	}
	return ExitGraphicsInit
}
