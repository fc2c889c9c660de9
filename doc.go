// Package latex2png finds LaTeX math in free text and renders it as one
// stacked PNG image.
//
// # Quick Start
//
// Run the whole pipeline and branch on the outcome:
//
//	out := latex2png.New().Run(text)
//	switch out.Kind {
//	case latex2png.Rendered:
//	    fmt.Println(out.Path)
//	case latex2png.NoExpressions:
//	    fmt.Fprintln(os.Stderr, "No LaTeX found")
//	case latex2png.RenderFailed:
//	    fmt.Fprintln(os.Stderr, "Render failed:", out.Cause)
//	}
//
// # Pipeline
//
//  1. Extraction: spans delimited by $$..$$, $..$, \[..\], and the equation
//     and align environments are collected, pattern by pattern.
//  2. Validation: a span is kept when, trimmed, it contains a command such
//     as \alpha, has no newline and is at most 300 characters.
//  3. Layout: the canvas is the style width by n row heights, never below
//     the minimum height.
//  4. Rendering: each expression is typeset on its own row and the figure
//     is cropped to the drawn rows plus padding, then written as PNG.
//
// # Styles
//
// Styles are plain values:
//
//	style := latex2png.DefaultStyle()
//	style.FontSize = 18
//	r := latex2png.New(latex2png.WithStyle(style))
//
// The image is written to DefaultOutputPath, a fixed file in the system
// temporary directory, unless WithOutputPath says otherwise.
package latex2png
