package raster

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/alnah/go-latex2png/internal/mathtext"
)

// ErrFont indicates a font family that cannot be loaded.
var ErrFont = errors.New("font error")

// builtinFamilies maps family names to TTF data indexed by mathtext.Font.
var builtinFamilies = map[string][4][]byte{
	"go":       {goitalic.TTF, goregular.TTF, gobold.TTF, gobolditalic.TTF},
	"gomedium": {gomediumitalic.TTF, gomedium.TTF, gobold.TTF, gobolditalic.TTF},
	"gomono":   {gomonoitalic.TTF, gomono.TTF, gomonobold.TTF, gomonobolditalic.TTF},
}

// Families returns the built-in font family names, sorted.
func Families() []string {
	names := make([]string, 0, len(builtinFamilies))
	for name := range builtinFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltinFamily reports whether name is a built-in font family.
func IsBuiltinFamily(name string) bool {
	_, ok := builtinFamilies[name]
	return ok
}

type faceKey struct {
	font mathtext.Font
	size float64
}

// faceSet hands out faces of one family at arbitrary sizes. Glyphs missing
// from a style are drawn with the fallback font when it has them: the
// family's roman style for built-in families, Go regular for font files.
type faceSet struct {
	fonts    [4]*sfnt.Font
	fallback *sfnt.Font
	dpi      float64
	faces    map[faceKey]font.Face
	buf      sfnt.Buffer
}

// loadFaces parses family, a built-in name or the path of a TrueType or
// OpenType file. A font file serves all four styles.
func loadFaces(family string, dpi float64) (*faceSet, error) {
	var data [4][]byte
	if ttf, ok := builtinFamilies[family]; ok {
		data = ttf
	} else {
		raw, err := os.ReadFile(family)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrFont, family, err)
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("%w: %q is empty", ErrFont, family)
		}
		data = [4][]byte{raw, raw, raw, raw}
	}

	s := &faceSet{dpi: dpi, faces: make(map[faceKey]font.Face)}
	parsed := make(map[*byte]*sfnt.Font)
	for i, ttf := range data {
		if f, ok := parsed[&ttf[0]]; ok {
			s.fonts[i] = f
			continue
		}
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %v", ErrFont, family, err)
		}
		parsed[&ttf[0]] = f
		s.fonts[i] = f
	}

	s.fallback = s.fonts[mathtext.FontRoman]
	if !IsBuiltinFamily(family) {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing fallback: %v", ErrFont, err)
		}
		s.fallback = f
	}
	return s, nil
}

// face returns the face for style at size points, creating it on first use.
func (s *faceSet) face(style mathtext.Font, size float64) (font.Face, error) {
	// Sizes are rounded to 1/64 pt so equal layouts share faces.
	key := faceKey{font: style, size: math.Round(size*64) / 64}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.fontFor(style), &opentype.FaceOptions{
		Size:    key.size,
		DPI:     s.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	s.faces[key] = f
	return f, nil
}

// fallbackFace returns a fallback face at size points, keyed apart from the
// family's own faces.
func (s *faceSet) fallbackFace(size float64) (font.Face, error) {
	key := faceKey{font: -1, size: math.Round(size*64) / 64}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.fallback, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     s.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	s.faces[key] = f
	return f, nil
}

func (s *faceSet) fontFor(style mathtext.Font) *sfnt.Font {
	if style < 0 || int(style) >= len(s.fonts) {
		return s.fonts[mathtext.FontRoman]
	}
	return s.fonts[style]
}

// covers reports whether f has a real glyph for r. Index 0 is .notdef.
func (s *faceSet) covers(f *sfnt.Font, r rune) bool {
	idx, err := f.GlyphIndex(&s.buf, r)
	return err == nil && idx != 0
}

// run is a piece of text drawn with a single face.
type run struct {
	face font.Face
	text string
}

// runs splits text into runs by face. Runes the style lacks go to the
// fallback font when it has them and otherwise stay with the style, which
// draws its .notdef box.
func (s *faceSet) runs(text string, style mathtext.Font, size float64) ([]run, error) {
	primary, err := s.face(style, size)
	if err != nil {
		return nil, err
	}
	var out []run
	for _, r := range text {
		f := primary
		if own := s.fontFor(style); own != s.fallback && !s.covers(own, r) && s.covers(s.fallback, r) {
			if f, err = s.fallbackFace(size); err != nil {
				return nil, err
			}
		}
		if n := len(out); n > 0 && out[n-1].face == f {
			out[n-1].text += string(r)
			continue
		}
		out = append(out, run{face: f, text: string(r)})
	}
	return out, nil
}

// glyphOutline returns the roman outline of r at size points and its advance,
// in pixels with y down from the baseline origin.
func (s *faceSet) glyphOutline(r rune, size float64) ([]segment, float64, error) {
	f := s.fontFor(mathtext.FontRoman)
	if !s.covers(f, r) && s.covers(s.fallback, r) {
		f = s.fallback
	}
	idx, err := f.GlyphIndex(&s.buf, r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFont, err)
	}
	ppem := toFixed(size * s.dpi / 72)
	segs, err := f.LoadGlyph(&s.buf, idx, ppem, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: loading %q: %v", ErrFont, r, err)
	}
	// segs is only valid until the buffer is used again.
	out := make([]segment, len(segs))
	for i, sg := range segs {
		out[i].op = sg.Op
		for k, p := range sg.Args {
			out[i].pts[k] = point{toFloat(p.X), toFloat(p.Y)}
		}
	}
	adv, err := f.GlyphAdvance(&s.buf, idx, ppem, font.HintingNone)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFont, err)
	}
	return out, toFloat(adv), nil
}

// Close releases every face handed out.
func (s *faceSet) Close() error {
	var errs []error
	for key, f := range s.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.faces, key)
	}
	return errors.Join(errs...)
}
