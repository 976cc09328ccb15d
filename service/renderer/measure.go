package renderer

import (
	"math"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// measureText returns the advance width of text in pixels at size. Text is
// measured per grapheme cluster. Clusters the font cannot draw as a single
// glyph are sized by their terminal cell width.
func (r *Renderer) measureText(text string, size float64) (float64, error) {
	f, err := r.loadFont()
	if err != nil {
		return 0, err
	}
	var (
		buf   sfnt.Buffer
		width float64
		ppem  = fixed.Int26_6(math.Round(size * 64))
	)
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		if adv, ok := glyphAdvance(f, &buf, runes, ppem); ok {
			width += float64(adv) / 64
			continue
		}
		width += float64(runewidth.StringWidth(gr.Str())) * size / 2
	}
	return width, nil
}

// glyphAdvance measures a cluster made of one base rune, optionally followed
// by combining marks, that the font has a glyph for.
func glyphAdvance(f *sfnt.Font, buf *sfnt.Buffer, runes []rune, ppem fixed.Int26_6) (fixed.Int26_6, bool) {
	for _, c := range runes[1:] {
		if !unicode.Is(unicode.Mn, c) {
			return 0, false
		}
	}
	idx, err := f.GlyphIndex(buf, runes[0])
	if err != nil || idx == 0 {
		return 0, false
	}
	adv, err := f.GlyphAdvance(buf, idx, ppem, font.HintingNone)
	if err != nil {
		return 0, false
	}
	return adv, true
}

// fontSize scales the base size so text fits the text box.
func (r *Renderer) fontSize(text string) (int, error) {
	width, err := r.measureText(text, baseFontSize)
	if err != nil {
		return 0, err
	}
	if width <= 0 {
		return maxFontSize, nil
	}
	size := int(math.Floor(baseFontSize * textBox / width))
	return clampFontSize(size), nil
}

func clampFontSize(size int) int {
	if size > maxFontSize {
		return maxFontSize
	}
	if size < minFontSize {
		return minFontSize
	}
	return size
}
