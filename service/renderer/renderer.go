// Package renderer formats ENS names into token metadata and draws the
// fallback SVG image.
package renderer

import (
	"sync"
	"time"

	"github.com/x-xyz/ensmetadata/service/ens"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/xerrors"
)

const (
	canvasSize   = 270
	baseFontSize = 20
	maxFontSize  = 32
	minFontSize  = 6
	// text has to fit in this many pixels at the base size
	textBox = 200
	// MaxChar is the most grapheme clusters a segment is drawn with.
	MaxChar = 60
	// segments longer than this are drawn on two lines
	lineBreakChar = 25
)

// Normalizer returns the normalised form of a name.
type Normalizer func(name string) (string, error)

type Cfg struct {
	// Normalizer defaults to ens.Normalize
	Normalizer Normalizer
	// Font is a TrueType/OpenType font used to measure text, Go Regular when empty.
	Font []byte
	Now  func() time.Time
}

// Renderer is safe for concurrent use. The font is parsed on first use.
type Renderer struct {
	normalize Normalizer
	fontData  []byte
	now       func() time.Time

	fontOnce sync.Once
	font     *sfnt.Font
	fontErr  error
}

func New(cfg *Cfg) *Renderer {
	r := &Renderer{
		normalize: cfg.Normalizer,
		fontData:  cfg.Font,
		now:       cfg.Now,
	}
	if r.normalize == nil {
		r.normalize = ens.Normalize
	}
	if r.fontData == nil {
		r.fontData = goregular.TTF
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

func (r *Renderer) loadFont() (*sfnt.Font, error) {
	r.fontOnce.Do(func() {
		f, err := sfnt.Parse(r.fontData)
		if err != nil {
			r.fontErr = xerrors.Errorf("parse font: %w", err)
			return
		}
		r.font = f
	})
	return r.font, r.fontErr
}
