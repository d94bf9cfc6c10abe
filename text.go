// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"fmt"
	"image"

	"github.com/gogpu/ggui/host"
	"github.com/gogpu/ggui/internal/glyphatlas"
)

// SetTextFont selects the font DrawText uses, building its glyph atlas the
// first time the font is seen. A nil font deselects the current one.
//
// An error means the atlas could not be built, most likely because every
// texture id is in use; the previous font stays selected.
func (s *Surface) SetTextFont(font Font) error {
	if font == nil {
		s.font = nil
		s.atlas = nil
		return nil
	}
	if s.closed {
		return ErrClosed
	}

	atlas, built, err := s.atlases.GetOrBuild(font)
	if err != nil {
		return fmt.Errorf("ggui: set text font: %w", err)
	}
	if built {
		Logger().Debug("ggui: glyph atlas built",
			"font", atlas.FontID, "texture", atlas.TextureID, "height", atlas.Height)
	}

	s.font = font
	s.atlas = atlas
	return nil
}

// SetTextColor sets the color glyphs are tinted with.
func (s *Surface) SetTextColor(r, g, b, a uint8) {
	s.state.text = newPaint(r, g, b, a)
}

// SetTextCursor moves the pen to (x, y), the top-left corner of the next glyph cell.
func (s *Surface) SetTextCursor(x, y int) {
	s.state.textCursor = image.Pt(x, y)
}

// TextCursor returns the pen position.
func (s *Surface) TextCursor() (x, y int) {
	return s.state.textCursor.X, s.state.textCursor.Y
}

// DrawText prints text at the pen position, one glyph per byte, and moves
// the pen past it. Whitespace and fully transparent text only move the pen.
// Without a font DrawText does nothing.
func (s *Surface) DrawText(text string) {
	if s.font == nil || s.atlas == nil || s.closed {
		return
	}

	tex, ok := s.textures.Get(s.atlas.TextureID)
	visible := ok && !s.state.text.invisible()
	if visible {
		s.host.SetBlendMode(s.state.text.blend())
	}
	tint := s.state.text.rgba()
	lineHeight := s.atlas.LineHeight
	pen := &s.state.textCursor

	for i := 0; i < len(text); i++ {
		code := text[i]
		a, b, c := s.font.CharMetrics(code)

		if visible && !glyphatlas.IsSpace(code) {
			g := s.atlas.Glyph(code)
			src := host.Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
			dst := host.Rect{X: pen.X + a, Y: pen.Y, W: b, H: lineHeight}
			if err := s.host.DrawTexture(tex, &src, dst, tint); err != nil {
				Logger().Debug("ggui: glyph draw failed", "code", code, "err", err)
			}
		}

		pen.X += a + b + c
	}
}
