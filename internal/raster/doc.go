// Package raster typesets parsed math and paints it into PNG images.
//
// Layout follows a simplified TeX box model: every node becomes a box with
// a width, an ascent and a descent around a baseline, and compound nodes
// place their children relative to the math axis. Glyphs come from the Go
// font families or from a TrueType/OpenType file; rules, radicals and
// stretched delimiters are filled outlines.
//
// Draw returns an RGBA picture and EncodePNG serializes it with the
// resolution recorded in a pHYs chunk.
package raster
