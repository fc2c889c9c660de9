package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2png [flags] < text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Find LaTeX math in text read from stdin and render it to a PNG.")
	fmt.Fprintln(w, "Each expression becomes one centered row. The image path is printed")
	fmt.Fprintln(w, "on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recognized delimiters: $$...$$, $...$, \\[...\\], \\begin{equation}, \\begin{align}")
	fmt.Fprintln(w, "An expression must contain a command such as \\frac or \\alpha to be rendered.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -s, --style <name>        Style preset (default look: tmux)")
	fmt.Fprintln(w, "      --assets <dir>        Directory of custom style presets")
	fmt.Fprintln(w, "      --list-styles         List style presets and exit")
	fmt.Fprintln(w, "      --print-style         Print the resolved style as YAML and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Show progress and timing")
	fmt.Fprintln(w, "      --completion <shell>  Print a completion script (bash, zsh, fish, powershell)")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  LATEX2PNG_CONFIG, LATEX2PNG_STYLE, LATEX2PNG_ASSETS")
	fmt.Fprintln(w, "  Used when the matching flag is not given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Completion:")
	fmt.Fprintln(w, "  eval \"$(latex2png --completion bash)\"    # ~/.bashrc")
	fmt.Fprintln(w, "  latex2png --completion fish > ~/.config/fish/completions/latex2png.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status: 0 rendered, 1 nothing found or render failed, 2 usage error.")
}
