package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Flags are parsed again by runMain; this pass only decides verbosity.
	verbose := false
	if flags, err := parseFlags(os.Args[1:]); err == nil {
		verbose = flags.verbose
	}
	setMaxProcs(verbose, env.Stderr)

	os.Exit(runMain(os.Args[1:], env))
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota, logging the
// adjustment only when verbose.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
