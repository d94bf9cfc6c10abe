// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"image"
	"image/color"

	"github.com/gogpu/ggui/host"
)

// paint is a color with its alpha stored as transparency: 0 is opaque and
// 255 is invisible. The zero value is opaque black.
type paint struct {
	r, g, b      uint8
	transparency uint8
}

func newPaint(r, g, b, a uint8) paint {
	return paint{r: r, g: g, b: b, transparency: 255 - a}
}

// invisible reports whether drawing with p has no effect.
func (p paint) invisible() bool {
	return p.transparency == 255
}

// blend selects the blend mode for p. Only fully opaque colors skip blending.
func (p paint) blend() host.BlendMode {
	if p.transparency == 0 {
		return host.BlendNone
	}
	return host.BlendAlpha
}

// alpha converts the stored transparency back to ordinary alpha.
func (p paint) alpha() uint8 {
	return 255 - p.transparency
}

// rgba returns p as a straight-alpha host color.
func (p paint) rgba() color.RGBA {
	return color.RGBA{R: p.r, G: p.g, B: p.b, A: p.alpha()}
}

// renderState is the sticky draw state of a surface. The zero value draws
// opaque black.
type renderState struct {
	draw       paint
	text       paint
	textCursor image.Point
}

// rect converts corner coordinates to a host rect.
func rect(x0, y0, x1, y1 int) host.Rect {
	return host.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// SetDrawColor sets the color used by FillRect, OutlineRect and, through
// its alpha, TexturedRect.
func (s *Surface) SetDrawColor(r, g, b, a uint8) {
	s.state.draw = newPaint(r, g, b, a)
}

// FillRect fills the rectangle with the draw color.
func (s *Surface) FillRect(x0, y0, x1, y1 int) {
	if !s.prepare(s.state.draw) {
		return
	}
	s.host.SetDrawColor(s.state.draw.rgba())
	if err := s.host.FillRect(rect(x0, y0, x1, y1)); err != nil {
		Logger().Debug("ggui: fill failed", "err", err)
	}
}

// OutlineRect draws a one pixel outline of the rectangle with the draw color.
func (s *Surface) OutlineRect(x0, y0, x1, y1 int) {
	if !s.prepare(s.state.draw) {
		return
	}
	s.host.SetDrawColor(s.state.draw.rgba())
	if err := s.host.DrawRect(rect(x0, y0, x1, y1)); err != nil {
		Logger().Debug("ggui: outline failed", "err", err)
	}
}

// TexturedRect stretches the bound texture over the rectangle. The texture
// is modulated by the draw color's alpha only. Nothing is drawn when no
// live texture is bound.
func (s *Surface) TexturedRect(x0, y0, x1, y1 int) {
	tex, ok := s.textures.Bound()
	if !ok {
		return
	}
	if !s.prepare(s.state.draw) {
		return
	}
	tint := color.RGBA{R: 255, G: 255, B: 255, A: s.state.draw.alpha()}
	if err := s.host.DrawTexture(tex, nil, rect(x0, y0, x1, y1), tint); err != nil {
		Logger().Debug("ggui: textured rect failed", "err", err)
	}
}

// prepare selects the blend mode for p and reports whether a draw call
// should be issued at all.
func (s *Surface) prepare(p paint) bool {
	if s.closed || p.invisible() {
		return false
	}
	s.host.SetBlendMode(p.blend())
	return true
}
