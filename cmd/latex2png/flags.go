package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks a command line that cannot be run as given.
var ErrUsage = errors.New("usage error")

// cliFlags holds every command line flag.
type cliFlags struct {
	config     string
	style      string
	assets     string
	verbose    bool
	listStyles bool
	printStyle bool
	completion string
	version    bool
	help       bool
}

// parseFlags parses args (without the program name). Input always comes
// from stdin, so positional arguments are rejected.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q (input is read from stdin)", ErrUsage, fs.Arg(0))
	}

	return f, nil
}

// newFlagSet registers every flag on a fresh FlagSet bound to f. Shell
// completion reads the same FlagSet.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("latex2png", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.style, "style", "s", "", "style preset name")
	fs.StringVar(&f.assets, "assets", "", "directory of custom style presets")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and timing")
	fs.BoolVar(&f.listStyles, "list-styles", false, "list style presets and exit")
	fs.BoolVar(&f.printStyle, "print-style", false, "print the resolved style as YAML and exit")
	fs.StringVar(&f.completion, "completion", "", "print a shell completion script and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	return fs
}
