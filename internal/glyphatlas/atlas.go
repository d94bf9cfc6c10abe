// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyphatlas packs the 256 byte-code glyphs of a font into a single
// texture.
//
// The packer is a single-pass row packer: glyphs are placed left to right
// with one pixel of padding, a new row starts when the next glyph would
// cross the right edge, and the buffer grows downward in fixed steps when a
// row would cross the bottom. Atlases are never repacked.
package glyphatlas

import (
	"fmt"
)

// Atlas geometry.
const (
	// Width is the fixed atlas width in pixels.
	Width = 256

	// GrowStep is the initial atlas height and the amount it grows by.
	GrowStep = 256

	// NumGlyphs is the number of byte codes an atlas covers.
	NumGlyphs = 256

	// Padding separates glyphs and rows.
	Padding = 1
)

// Rect is a glyph's location in atlas pixel space.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rect covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// String returns a string representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("Glyph(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Source is the font query the packer needs.
type Source interface {
	// ID identifies the font. Atlases are cached per ID.
	ID() int

	// LineHeight is the height of every glyph cell.
	LineHeight() int

	// CharMetrics returns the leading bearing, glyph width and trailing
	// spacing of code.
	CharMetrics(code byte) (a, b, c int)

	// CharRGBA renders code into rgba, a canvasW x canvasH RGBA buffer,
	// with the glyph's top-left corner at (x, y).
	CharRGBA(code byte, x, y, canvasW, canvasH int, rgba []byte)
}

// Atlas is the packed glyph table of one font.
type Atlas struct {
	FontID     int
	TextureID  int
	LineHeight int

	// Height is the final texture height.
	Height int

	// Rects holds one entry per byte code. Whitespace entries are zero.
	Rects [NumGlyphs]Rect
}

// Glyph returns the rect packed for code.
func (a *Atlas) Glyph(code byte) Rect {
	return a.Rects[code]
}

// IsSpace reports whether code is skipped by the packer: tab, newline,
// vertical tab, form feed, carriage return and space.
func IsSpace(code byte) bool {
	switch code {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Pack lays out the glyphs of src and renders them into a new RGBA buffer
// of Width x atlas.Height pixels. The returned atlas has no texture yet
// (TextureID is -1).
func Pack(src Source) (*Atlas, []byte) {
	lineHeight := max(src.LineHeight(), 0)

	atlas := &Atlas{
		FontID:     src.ID(),
		TextureID:  -1,
		LineHeight: lineHeight,
	}
	height := GrowStep
	pix := make([]byte, Width*height*4)

	x, y := 0, 0
	for i := 0; i < NumGlyphs; i++ {
		code := byte(i)
		if IsSpace(code) {
			continue
		}

		_, w, _ := src.CharMetrics(code)
		w = min(max(w, 0), Width-Padding)

		if x+w+Padding > Width {
			x = 0
			y += lineHeight + Padding
		}
		for y+lineHeight+Padding > height {
			pix = grow(pix, height)
			height += GrowStep
		}

		src.CharRGBA(code, x, y, Width, height, pix)
		atlas.Rects[code] = Rect{X: x, Y: y, W: w, H: lineHeight}

		x += w + Padding
	}

	atlas.Height = height
	return atlas, pix
}

// grow returns a copy of pix with GrowStep more rows. Existing rows keep
// their content.
func grow(pix []byte, height int) []byte {
	out := make([]byte, Width*(height+GrowStep)*4)
	copy(out, pix)
	return out
}
