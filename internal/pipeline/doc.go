// Package pipeline finds LaTeX math spans in free text.
//
// Extraction is two stages:
//   - ExtractCandidates walks the ordered delimiter table (Patterns) and
//     collects every match, pattern-major then left to right
//   - IsExpression rejects spans that do not look like math markup
//
// ExtractExpressions composes both and is what the renderer consumes.
// Everything here is a pure function of the input text.
package pipeline
