// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"fmt"
	"image"
)

// Insets are the border widths a panel reserves inside its bounds.
type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Panel is the toolkit widget a viewport is made current for.
type Panel interface {
	// Position returns the panel origin relative to its parent.
	Position() image.Point

	// Size returns the panel width and height.
	Size() image.Point

	// Insets returns the panel's border insets.
	Insets() Insets

	// AbsExtents returns the panel bounds in window coordinates.
	AbsExtents() image.Rectangle

	// ClipRect returns the visible part of the panel in window coordinates.
	ClipRect() image.Rectangle
}

// Font is a byte-oriented bitmap font.
//
// Fonts must not change once drawn with: the surface packs a font's glyphs
// into an atlas the first time it is selected and keeps it keyed by ID.
type Font interface {
	// ID identifies the font within the process.
	ID() int

	// LineHeight returns the height of every glyph cell in pixels.
	LineHeight() int

	// CharMetrics returns the spacing before the glyph (a), the glyph
	// width (b) and the spacing after it (c). The pen advances by a+b+c.
	CharMetrics(code byte) (a, b, c int)

	// CharRGBA renders code into rgba, a canvasW x canvasH buffer of
	// straight RGBA pixels, with the glyph cell's top-left corner at (x, y).
	CharRGBA(code byte, x, y, canvasW, canvasH int, rgba []byte)
}

// CursorKind is the abstract pointer shape a toolkit asks for.
type CursorKind uint8

// Cursor kinds.
const (
	CursorArrow CursorKind = iota
	CursorIBeam
	CursorHourglass
	CursorCrosshair
	CursorUp
	CursorSizeNWSE
	CursorSizeNESW
	CursorSizeWE
	CursorSizeNS
	CursorSizeAll
	CursorNo
	CursorHand

	// CursorNone hides the pointer.
	CursorNone

	// CursorUser is a custom bitmap cursor. Surfaces do not support it.
	CursorUser
)

var cursorKindNames = [...]string{
	CursorArrow:     "arrow",
	CursorIBeam:     "ibeam",
	CursorHourglass: "hourglass",
	CursorCrosshair: "crosshair",
	CursorUp:        "up",
	CursorSizeNWSE:  "sizenwse",
	CursorSizeNESW:  "sizenesw",
	CursorSizeWE:    "sizewe",
	CursorSizeNS:    "sizens",
	CursorSizeAll:   "sizeall",
	CursorNo:        "no",
	CursorHand:      "hand",
	CursorNone:      "none",
	CursorUser:      "user",
}

// String returns the cursor kind name.
func (k CursorKind) String() string {
	if int(k) < len(cursorKindNames) {
		return cursorKindNames[k]
	}
	return fmt.Sprintf("CursorKind(%d)", k)
}

// StaticPanel is a Panel with fixed geometry. It is useful for root panels
// and tests.
type StaticPanel struct {
	Bounds image.Rectangle
	Inset  Insets

	// Clip defaults to Bounds when empty.
	Clip image.Rectangle
}

// Position implements Panel.
func (p *StaticPanel) Position() image.Point { return p.Bounds.Min }

// Size implements Panel.
func (p *StaticPanel) Size() image.Point { return p.Bounds.Size() }

// Insets implements Panel.
func (p *StaticPanel) Insets() Insets { return p.Inset }

// AbsExtents implements Panel.
func (p *StaticPanel) AbsExtents() image.Rectangle { return p.Bounds }

// ClipRect implements Panel.
func (p *StaticPanel) ClipRect() image.Rectangle {
	if p.Clip.Empty() {
		return p.Bounds
	}
	return p.Clip
}
