package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	latex2png "github.com/alnah/go-latex2png"
	"github.com/alnah/go-latex2png/internal/assets"
	"github.com/alnah/go-latex2png/internal/config"
	"github.com/alnah/go-latex2png/internal/fileutil"
	"github.com/alnah/go-latex2png/internal/hints"
	"github.com/alnah/go-latex2png/internal/mathtext"
	"github.com/alnah/go-latex2png/internal/raster"
	"github.com/alnah/go-latex2png/internal/yamlutil"
)

// runMain runs the CLI with args (without the program name) and returns the
// process exit code.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "latex2png %s\n", Version)
		return ExitSuccess
	case flags.completion != "":
		if err := GenerateCompletion(env.Stdout, Shell(flags.completion)); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	warnUnknownEnvVars(env.Stderr)
	applyEnvConfig(loadEnvConfig(), flags)

	if err := run(flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run resolves the style, reads stdin and renders. The returned error is
// the message shown to the user.
func run(flags *cliFlags, env *Environment) error {
	cfg, err := loadConfig(flags, env)
	if err != nil {
		return err
	}

	resolver, err := assets.NewAssetResolver(cfg.Assets)
	if err != nil {
		return err
	}
	if flags.listStyles {
		return listStyles(resolver, env.Stdout)
	}

	style, err := cfg.Resolve(resolver, latex2png.DefaultStyle())
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			names, _ := resolver.ListStyles()
			return &userError{err: err, hint: hints.ForStyleNotFound(names)}
		}
		return err
	}
	if flags.printStyle {
		return printStyle(style, env.Stdout)
	}

	input, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", latex2png.ErrReadInput, err)
	}

	start := env.Now()
	renderer := latex2png.New(
		latex2png.WithStyle(style),
		latex2png.WithOutputPath(env.OutputPath),
	)
	out := renderer.Run(string(input))

	if flags.verbose {
		logOutcome(env.Stderr, out, style, env.Now().Sub(start))
	}

	switch out.Kind {
	case latex2png.NoExpressions:
		return &userError{msg: "No LaTeX found", err: out.Err()}
	case latex2png.RenderFailed:
		return &userError{msg: "Render failed: " + out.Cause.Error(), err: out.Err()}
	}
	fmt.Fprintln(env.Stdout, out.Path)
	return nil
}

// loadConfig returns the config named by --config (or an empty one) with
// --style and --assets layered on top.
func loadConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	cfg := &config.Config{}
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(flags.config) {
				return nil, &userError{err: err, hint: hints.ForConfigNotFound(config.SearchPaths(flags.config))}
			}
			return nil, err
		}
		cfg = loaded
		if flags.verbose {
			fmt.Fprintf(env.Stderr, "Config: %s\n", flags.config)
		}
	}
	if flags.style != "" {
		cfg.Preset = flags.style
	}
	if flags.assets != "" {
		cfg.Assets = flags.assets
	}
	return cfg, nil
}

func listStyles(loader assets.AssetLoader, w io.Writer) error {
	names, err := loader.ListStyles()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

func printStyle(style latex2png.Style, w io.Writer) error {
	data, err := yamlutil.Encode(config.FromStyle(style))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// logOutcome writes the verbose summary of a run.
func logOutcome(w io.Writer, out latex2png.Outcome, style latex2png.Style, elapsed time.Duration) {
	fmt.Fprintf(w, "Expressions: %d\n", len(out.Expressions))
	for i, expr := range out.Expressions {
		fmt.Fprintf(w, "  %d: %s\n", i+1, expr)
	}
	if out.Kind != latex2png.NoExpressions {
		px, py := out.Canvas.Pixels(style.DPI)
		fmt.Fprintf(w, "Canvas: %.2fx%.2f in (%dx%d px at %.0f dpi)\n",
			out.Canvas.Width, out.Canvas.Height, px, py, style.DPI)
	}
	fmt.Fprintf(w, "Done in %s\n", elapsed.Round(time.Millisecond))
}

// userError is an error shown to the user as msg (or err's message when
// msg is empty), optionally with a hint computed where its context exists.
type userError struct {
	msg  string
	err  error
	hint string
}

func (e *userError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.err.Error()
}

func (e *userError) Unwrap() error { return e.err }

// hintFor returns the hint to append to err's message, if any.
func hintFor(err error) string {
	var u *userError
	if errors.As(err, &u) && u.hint != "" {
		return u.hint
	}
	switch {
	case errors.Is(err, latex2png.ErrNoExpressions):
		return hints.ForNoExpressions()
	case errors.Is(err, mathtext.ErrSyntax):
		return hints.ForSyntax()
	case errors.Is(err, raster.ErrFont):
		return hints.ForFont(raster.Families())
	case errors.Is(err, fs.ErrPermission), errors.Is(err, fs.ErrNotExist):
		return hints.ForOutputDirectory()
	}
	return ""
}
