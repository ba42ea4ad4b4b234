// Command fractals renders a Kage coloring program over the complex plane
// and lets the user pan and zoom it.
//
//	fractals [flags] <fractal-path> [width height]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/fractals"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args, runs the viewer and returns the process exit code.
// Diagnostics go to out.
func run(args []string, out io.Writer) int {
	cfg, err := fractals.ParseArgs(args)
	if err == nil {
		err = fractals.Run(cfg)
	}
	if err == nil {
		return fractals.ExitOK
	}

	var cfgErr *fractals.ConfigError
	var progErr *fractals.ProgramError
	switch {
	case errors.As(err, &cfgErr):
		fmt.Fprintf(out, "%s (%s)\n", fractals.Usage, cfgErr.Error())
	case errors.As(err, &progErr):
		fmt.Fprintln(out, progErr.Error())
		if progErr.Kind != fractals.ProgramIO {
			fmt.Fprintln(out, progErr.Detail())
		}
	default:
		fmt.Fprintln(out, err.Error())
	}
	return fractals.ExitCode(err)
}
