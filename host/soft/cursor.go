// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"errors"

	"github.com/gogpu/ggui/host"
)

// ErrCursorUnavailable is returned for stock cursors marked as failing.
var ErrCursorUnavailable = errors.New("soft: cursor unavailable")

// Cursor is a simulated stock cursor.
type Cursor struct {
	ID     host.SystemCursor
	freed  bool
	onFree func()
}

// Free implements host.Cursor.
func (c *Cursor) Free() {
	if c.freed {
		return
	}
	c.freed = true
	if c.onFree != nil {
		c.onFree()
	}
}

// Freed reports whether Free has been called.
func (c *Cursor) Freed() bool {
	return c.freed
}

// defaultCursor stands in for the platform-owned default cursor.
var defaultCursor = &Cursor{ID: host.SystemCursorArrow}

type cursors struct {
	created []*Cursor
	counts  [host.NumSystemCursors]int
	failing map[host.SystemCursor]bool
	active  host.Cursor
	visible bool
	onFree  func()
}

func newCursors() cursors {
	return cursors{
		failing: make(map[host.SystemCursor]bool),
		active:  defaultCursor,
		visible: true,
	}
}

// CreateSystemCursor implements host.Cursors.
func (c *cursors) CreateSystemCursor(id host.SystemCursor) (host.Cursor, error) {
	if id >= host.NumSystemCursors || c.failing[id] {
		return nil, ErrCursorUnavailable
	}
	cur := &Cursor{ID: id, onFree: c.onFree}
	c.created = append(c.created, cur)
	c.counts[id]++
	return cur, nil
}

// DefaultCursor implements host.Cursors.
func (c *cursors) DefaultCursor() host.Cursor {
	return defaultCursor
}

// SetCursor implements host.Cursors.
func (c *cursors) SetCursor(cur host.Cursor) {
	c.active = cur
}

// ShowCursor implements host.Cursors.
func (c *cursors) ShowCursor(visible bool) {
	c.visible = visible
}

// FailCursor makes CreateSystemCursor fail for id.
func (c *cursors) FailCursor(id host.SystemCursor) {
	c.failing[id] = true
}

// CursorCreations returns how many times the stock cursor id was created.
func (c *cursors) CursorCreations(id host.SystemCursor) int {
	if id >= host.NumSystemCursors {
		return 0
	}
	return c.counts[id]
}

// ActiveCursor returns the active cursor.
func (c *cursors) ActiveCursor() host.Cursor {
	return c.active
}

// IsDefaultCursor reports whether cur is the platform default cursor.
func IsDefaultCursor(cur host.Cursor) bool {
	return cur == defaultCursor
}

// CursorVisible reports whether the pointer is shown.
func (c *cursors) CursorVisible() bool {
	return c.visible
}

// LiveCursors returns the number of created cursors not yet freed.
func (c *cursors) LiveCursors() int {
	n := 0
	for _, cur := range c.created {
		if !cur.freed {
			n++
		}
	}
	return n
}

func (c *cursors) freeAll() {
	for _, cur := range c.created {
		cur.Free()
	}
}
