// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import "github.com/gogpu/ggui/host"

// systemCursors maps cursor kinds to stock cursors. Kinds without a stock
// equivalent use the arrow.
var systemCursors = [...]host.SystemCursor{
	CursorArrow:     host.SystemCursorArrow,
	CursorIBeam:     host.SystemCursorIBeam,
	CursorHourglass: host.SystemCursorWait,
	CursorCrosshair: host.SystemCursorCrosshair,
	CursorUp:        host.SystemCursorArrow,
	CursorSizeNWSE:  host.SystemCursorSizeNWSE,
	CursorSizeNESW:  host.SystemCursorSizeNESW,
	CursorSizeWE:    host.SystemCursorSizeWE,
	CursorSizeNS:    host.SystemCursorSizeNS,
	CursorSizeAll:   host.SystemCursorSizeAll,
	CursorNo:        host.SystemCursorNo,
	CursorHand:      host.SystemCursorHand,
}

// SystemCursorFor returns the stock cursor shown for kind.
// CursorNone and CursorUser have no stock cursor and map to the arrow.
func SystemCursorFor(kind CursorKind) host.SystemCursor {
	if int(kind) < len(systemCursors) {
		return systemCursors[kind]
	}
	return host.SystemCursorArrow
}

// SetCursor switches the pointer shape. CursorNone hides the pointer;
// CursorUser is not supported and leaves the pointer untouched.
//
// Stock cursors are created on first use and kept until Close. If one cannot
// be created the platform default is shown instead and creation is retried
// the next time the kind is requested.
func (s *Surface) SetCursor(kind CursorKind) {
	if s.closed {
		return
	}
	switch kind {
	case CursorNone:
		s.host.ShowCursor(false)
		return
	case CursorUser:
		Logger().Warn("ggui: bitmap cursors unimplemented")
		return
	}

	id := SystemCursorFor(kind)
	cur, ok := s.cursors[id]
	if !ok {
		var err error
		cur, err = s.host.CreateSystemCursor(id)
		if err != nil {
			Logger().Debug("ggui: system cursor unavailable", "cursor", id, "err", err)
			cur = nil
		} else {
			Logger().Debug("ggui: system cursor created", "cursor", id)
			s.cursors[id] = cur
		}
	}

	if cur != nil {
		s.host.SetCursor(cur)
	} else {
		s.host.SetCursor(s.host.DefaultCursor())
	}
	s.host.ShowCursor(true)
}

func (s *Surface) freeCursors() {
	for id, cur := range s.cursors {
		cur.Free()
		delete(s.cursors, id)
	}
}
