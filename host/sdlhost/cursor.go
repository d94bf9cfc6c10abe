// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/ggui/host"
)

// Cursor wraps an SDL cursor.
type Cursor struct {
	cur   *sdl.Cursor
	owned bool
}

// Free implements host.Cursor. The default cursor is owned by SDL and is
// never freed.
func (c *Cursor) Free() {
	if c.cur == nil || !c.owned {
		return
	}
	sdl.FreeCursor(c.cur)
	c.cur = nil
}

// CreateSystemCursor implements host.Cursors.
func (h *Host) CreateSystemCursor(id host.SystemCursor) (host.Cursor, error) {
	cur := sdl.CreateSystemCursor(sdl.SystemCursor(id))
	if cur == nil {
		return nil, fmt.Errorf("sdl: create cursor %s: %v", id, sdl.GetError())
	}
	return &Cursor{cur: cur, owned: true}, nil
}

// DefaultCursor implements host.Cursors.
func (h *Host) DefaultCursor() host.Cursor {
	return &Cursor{cur: sdl.GetDefaultCursor()}
}

// SetCursor implements host.Cursors.
func (h *Host) SetCursor(c host.Cursor) {
	if cur, ok := c.(*Cursor); ok && cur.cur != nil {
		sdl.SetCursor(cur.cur)
	}
}

// ShowCursor implements host.Cursors.
func (h *Host) ShowCursor(visible bool) {
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	_, _ = sdl.ShowCursor(toggle)
}
