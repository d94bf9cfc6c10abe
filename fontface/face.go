// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontface

import (
	"image"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/ggui"
)

var nextID atomic.Int64

func newID() int {
	return int(nextID.Add(1))
}

// abc holds the horizontal metrics of one byte code.
type abc struct {
	a, b, c int
}

// Face is a ggui.Font over a golang.org/x/image font.Face.
//
// All metrics are computed once, when the face is created. Face must not be
// used from more than one goroutine at a time.
type Face struct {
	id         int
	name       string
	face       font.Face
	lineHeight int
	ascent     int

	runes   [256]rune
	metrics [256]abc
}

// Option configures a Face.
type Option func(*config)

type config struct {
	charset *charmap.Charmap
	name    string
	covers  func(r rune) bool
}

// WithCharset selects the character set byte codes are decoded with.
func WithCharset(cm *charmap.Charmap) Option {
	return func(c *config) {
		if cm != nil {
			c.charset = cm
		}
	}
}

// WithName sets the face name reported by Name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// withCoverage restricts the codes that get glyphs to runes covers accepts.
func withCoverage(covers func(r rune) bool) Option {
	return func(c *config) {
		c.covers = covers
	}
}

// New wraps face. Codes whose rune the face has no glyph for get zero
// metrics and are neither drawn nor advanced over.
func New(face font.Face, opts ...Option) *Face {
	cfg := config{charset: charmap.Windows1252}
	for _, fn := range opts {
		fn(&cfg)
	}

	m := face.Metrics()
	f := &Face{
		id:     newID(),
		name:   cfg.name,
		face:   face,
		ascent: m.Ascent.Ceil(),
		runes:  decodeTable(cfg.charset),
	}
	f.lineHeight = f.ascent + m.Descent.Ceil()

	for code, r := range f.runes {
		if r < 0 || (cfg.covers != nil && !cfg.covers(r)) {
			f.runes[code] = -1
			continue
		}
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			f.runes[code] = -1
			continue
		}
		a := bounds.Min.X.Floor()
		b := max(bounds.Max.X.Ceil()-a, 0)
		if b == 0 {
			a = 0
		}
		f.metrics[code] = abc{a: a, b: b, c: advance.Round() - a - b}
	}

	ggui.Logger().Debug("fontface: face created", "id", f.id, "name", f.name, "lineHeight", f.lineHeight)
	return f
}

// Fixed returns a face over the built-in 7x13 bitmap font.
func Fixed(opts ...Option) *Face {
	bf := basicfont.Face7x13
	covers := func(r rune) bool {
		for _, rg := range bf.Ranges {
			if r >= rg.Low && r < rg.High {
				return true
			}
		}
		return false
	}
	return New(bf, append([]Option{WithName("fixed 7x13"), withCoverage(covers)}, opts...)...)
}

// ID implements ggui.Font.
func (f *Face) ID() int {
	return f.id
}

// Name returns the face name, if known.
func (f *Face) Name() string {
	return f.name
}

// LineHeight implements ggui.Font.
func (f *Face) LineHeight() int {
	return f.lineHeight
}

// Ascent returns the distance from the top of a glyph cell to the baseline.
func (f *Face) Ascent() int {
	return f.ascent
}

// Rune returns the rune byte code code stands for, or -1 when the face has
// no glyph for it.
func (f *Face) Rune(code byte) rune {
	return f.runes[code]
}

// CharMetrics implements ggui.Font.
func (f *Face) CharMetrics(code byte) (a, b, c int) {
	m := f.metrics[code]
	return m.a, m.b, m.c
}

// CharRGBA implements ggui.Font. The glyph is written as white pixels with
// coverage alpha, clipped to its cell and to the canvas.
func (f *Face) CharRGBA(code byte, x, y, canvasW, canvasH int, rgba []byte) {
	r := f.runes[code]
	m := f.metrics[code]
	if r < 0 || m.b == 0 || len(rgba) < canvasW*canvasH*4 {
		return
	}

	dot := fixed.Point26_6{X: fixed.I(x - m.a), Y: fixed.I(y + f.ascent)}
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok {
		return
	}

	clip := image.Rect(x, y, x+m.b, y+f.lineHeight).
		Intersect(image.Rect(0, 0, canvasW, canvasH)).
		Intersect(dr)
	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		for px := clip.Min.X; px < clip.Max.X; px++ {
			_, _, _, ma := mask.At(maskp.X+px-dr.Min.X, maskp.Y+py-dr.Min.Y).RGBA()
			i := (py*canvasW + px) * 4
			rgba[i+0] = 255
			rgba[i+1] = 255
			rgba[i+2] = 255
			rgba[i+3] = uint8(ma >> 8) //nolint:gosec // 16-bit alpha shifted to 8 bits
		}
	}
}

var _ ggui.Font = (*Face)(nil)
