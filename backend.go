// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

// Backend is the capability contract a toolkit draws and queries through.
//
// Coordinates passed to drawing methods are relative to the viewport made
// current with PushViewport. Rectangles are given by their corners
// (x0, y0) inclusive and (x1, y1) exclusive.
//
// Drawing never fails: invalid texture ids, an unset font or fully
// transparent colors turn calls into no-ops.
type Backend interface {
	// Window.
	SetTitle(title string)
	SetFullscreenMode(width, height, bpp int) bool
	SetWindowedMode()
	SetTopMost(topMost bool)
	CreatePopup(panel Panel)
	AddModeInfo(width, height, bpp int)
	HasFocus() bool
	IsWithin(x, y int) bool
	PointerPosition() (x, y int)

	// Primitives.
	SetDrawColor(r, g, b, a uint8)
	FillRect(x0, y0, x1, y1 int)
	OutlineRect(x0, y0, x1, y1 int)

	// Text.
	SetTextFont(font Font) error
	SetTextColor(r, g, b, a uint8)
	SetTextCursor(x, y int)
	DrawText(text string)

	// Textures.
	AllocateTextureID() int
	UploadTextureRGBA(id int, rgba []byte, width, height int) error
	BindTexture(id int)
	TexturedRect(x0, y0, x1, y1 int)

	// Cursor.
	SetCursor(kind CursorKind)

	// Frame.
	PushViewport(panel Panel, useInsets bool) *Viewport
	PopViewport(v *Viewport)
	Present()

	// Hooks the toolkit calls that need no platform work.
	Invalidate(panel Panel)
	EnableCapture(enable bool)
	ApplyChanges()
}

var _ Backend = (*Surface)(nil)
