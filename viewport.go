// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"image"

	"github.com/gogpu/ggui/host"
)

// Viewport is the frame a panel draws in. It is returned by PushViewport and
// must be handed back to PopViewport once the panel has been drawn.
type Viewport struct {
	// Insets are the panel insets taken into account, zero unless requested.
	Insets Insets

	// Extents are the panel bounds in window coordinates.
	Extents image.Rectangle

	// Clip is the panel's visible area in window coordinates.
	Clip image.Rectangle

	// Rect is the viewport applied to the renderer.
	Rect host.Rect
}

// computeViewport derives the viewport of panel in a window of the given
// size. The viewport extends from the panel's content origin to the
// bottom-right corner of the window.
func computeViewport(panel Panel, useInsets bool, winW, winH int) *Viewport {
	v := &Viewport{
		Extents: panel.AbsExtents(),
		Clip:    panel.ClipRect(),
	}
	if useInsets {
		v.Insets = panel.Insets()
	}

	x := v.Insets.Left + v.Extents.Min.X
	y := v.Insets.Top + v.Extents.Min.Y
	v.Rect = host.Rect{X: x, Y: y, W: max(winW-x, 0), H: max(winH-y, 0)}
	return v
}

// PushViewport makes panel current: subsequent drawing is relative to the
// panel's content origin. Every push must be matched by a PopViewport
// before the next panel is pushed.
func (s *Surface) PushViewport(panel Panel, useInsets bool) *Viewport {
	if s.active != nil {
		Logger().Warn("ggui: viewport pushed while another is current", "previous", s.active.Rect)
	}

	var w, h int
	if !s.closed {
		w, h = s.host.OutputSize()
	}
	v := computeViewport(panel, useInsets, w, h)
	s.active = v

	if s.closed {
		return v
	}
	if err := s.host.SetViewport(&v.Rect); err != nil {
		Logger().Debug("ggui: set viewport failed", "rect", v.Rect, "err", err)
	}
	return v
}

// PopViewport restores drawing to the full window. Popping nil or a frame
// that is no longer current does nothing.
func (s *Surface) PopViewport(v *Viewport) {
	if v == nil || v != s.active {
		return
	}
	s.active = nil

	if s.closed {
		return
	}
	if err := s.host.SetViewport(nil); err != nil {
		Logger().Debug("ggui: reset viewport failed", "err", err)
	}
}

// CurrentViewport returns the frame pushed last, or nil.
func (s *Surface) CurrentViewport() *Viewport {
	return s.active
}
