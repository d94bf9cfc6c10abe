// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

// SystemCursor enumerates the stock cursors a platform provides.
// Values match SDL_SystemCursor.
type SystemCursor uint8

const (
	SystemCursorArrow SystemCursor = iota
	SystemCursorIBeam
	SystemCursorWait
	SystemCursorCrosshair
	SystemCursorWaitArrow
	SystemCursorSizeNWSE
	SystemCursorSizeNESW
	SystemCursorSizeWE
	SystemCursorSizeNS
	SystemCursorSizeAll
	SystemCursorNo
	SystemCursorHand

	// NumSystemCursors is the number of stock cursors.
	NumSystemCursors
)

var systemCursorNames = [...]string{
	"arrow", "ibeam", "wait", "crosshair", "waitarrow", "size-nwse",
	"size-nesw", "size-we", "size-ns", "size-all", "no", "hand",
}

// String returns the cursor name.
func (c SystemCursor) String() string {
	if int(c) < len(systemCursorNames) {
		return systemCursorNames[c]
	}
	return "unknown"
}

// Cursor is a native cursor handle.
type Cursor interface {
	// Free releases the native resource. Free is idempotent.
	Free()
}

// Cursors creates and activates pointer cursors.
type Cursors interface {
	// CreateSystemCursor creates a stock cursor.
	CreateSystemCursor(id SystemCursor) (Cursor, error)

	// DefaultCursor returns the platform default cursor. It is owned by
	// the platform and must not be freed.
	DefaultCursor() Cursor

	// SetCursor makes c the active cursor.
	SetCursor(c Cursor)

	// ShowCursor shows or hides the pointer.
	ShowCursor(visible bool)
}
