// Package mathtext parses the subset of LaTeX math used in chat and notes
// into a node tree that the raster package can lay out.
//
// This is not a TeX engine. There is no macro expansion and no package
// support. The parser aims to make common inputs look like math:
//
//   - letters italic; digits, operators and function names upright
//   - Greek letters, operators, relations and arrows mapped to Unicode
//   - ^ and _ scripts, primes, \frac, \binom, \sqrt[n]{}
//   - accents (\hat, \bar, \vec, ...), \overline
//   - font switches (\mathrm, \mathbf, \mathbb, \text, ...)
//   - \left ... \right fences and matrix-like environments
//
// Unknown commands are kept and rendered upright by name. Structural
// problems (unbalanced braces, missing arguments, double scripts) are
// reported as ErrSyntax.
package mathtext
