// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggui

import (
	"github.com/gogpu/ggui/host"
	"github.com/gogpu/ggui/internal/glyphatlas"
	"github.com/gogpu/ggui/internal/texture"
)

// Surface implements Backend on top of a host.
//
// A Surface owns its host, the texture registry, the glyph atlases built for
// the fonts it has drawn with and the stock cursors it has created. All of
// them are released by Close.
//
// Surface is not safe for concurrent use.
type Surface struct {
	host     host.Host
	textures *texture.Registry
	atlases  *glyphatlas.Cache
	cursors  map[host.SystemCursor]host.Cursor

	state  renderState
	font   Font
	atlas  *glyphatlas.Atlas
	active *Viewport

	closed bool
}

// New creates a surface drawing through h. The surface takes ownership of h.
func New(h host.Host, opts ...Option) *Surface {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	textures := texture.New(h, o.textureCapacity)
	s := &Surface{
		host:     h,
		textures: textures,
		atlases:  glyphatlas.NewCache(textures),
		cursors:  make(map[host.SystemCursor]host.Cursor),
	}
	if o.title != "" {
		h.SetTitle(o.title)
	}
	return s
}

// Host returns the underlying host.
func (s *Surface) Host() host.Host {
	return s.host
}

// SetTitle sets the window title.
func (s *Surface) SetTitle(title string) {
	if s.closed {
		return
	}
	s.host.SetTitle(title)
}

// SetFullscreenMode is not supported and always returns false.
func (s *Surface) SetFullscreenMode(width, height, bpp int) bool {
	Logger().Warn("ggui: SetFullscreenMode unimplemented", "width", width, "height", height, "bpp", bpp)
	return false
}

// SetWindowedMode is not supported.
func (s *Surface) SetWindowedMode() {
	Logger().Warn("ggui: SetWindowedMode unimplemented")
}

// SetTopMost is not supported.
func (s *Surface) SetTopMost(topMost bool) {
	Logger().Warn("ggui: SetTopMost unimplemented", "topMost", topMost)
}

// CreatePopup is not supported.
func (s *Surface) CreatePopup(panel Panel) {
	Logger().Warn("ggui: CreatePopup unimplemented", "panel", panel)
}

// AddModeInfo is not supported.
func (s *Surface) AddModeInfo(width, height, bpp int) {
	Logger().Warn("ggui: AddModeInfo unimplemented", "width", width, "height", height, "bpp", bpp)
}

// HasFocus reports whether the window has keyboard or pointer focus.
// A closed surface has no focus.
func (s *Surface) HasFocus() bool {
	return s.flags()&(host.FlagInputFocus|host.FlagMouseFocus) != 0
}

// IsWithin reports whether the pointer is inside the window. The
// coordinates are not consulted; pointer focus is the answer.
func (s *Surface) IsWithin(_, _ int) bool {
	return s.flags()&host.FlagMouseFocus != 0
}

// PointerPosition returns the pointer position in desktop coordinates,
// or (0, 0) once the surface is closed.
func (s *Surface) PointerPosition() (x, y int) {
	if s.closed {
		return 0, 0
	}
	return s.host.GlobalMousePosition()
}

func (s *Surface) flags() host.WindowFlags {
	if s.closed {
		return 0
	}
	return s.host.Flags()
}

// AllocateTextureID reserves a new texture id, or returns -1 once every
// id has been handed out.
func (s *Surface) AllocateTextureID() int {
	id, err := s.textures.Allocate()
	if err != nil {
		Logger().Warn("ggui: texture ids exhausted", "capacity", s.textures.Cap())
		return -1
	}
	return id
}

// UploadTextureRGBA replaces the texture stored at id with width x height
// straight RGBA pixels. Ids outside the registry are ignored.
func (s *Surface) UploadTextureRGBA(id int, rgba []byte, width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if !s.textures.Valid(id) {
		Logger().Debug("ggui: upload to invalid texture id ignored", "id", id)
		return nil
	}
	return s.textures.Replace(id, rgba, width, height)
}

// BindTexture selects the texture TexturedRect draws. Invalid ids are
// ignored and leave the current binding in place.
func (s *Surface) BindTexture(id int) {
	s.textures.Bind(id)
}

// Present shows the frame.
func (s *Surface) Present() {
	if s.closed {
		return
	}
	s.host.Present()
}

// Invalidate is a no-op; every frame is repainted in full.
func (s *Surface) Invalidate(Panel) {}

// EnableCapture is not supported.
func (s *Surface) EnableCapture(enable bool) {
	Logger().Warn("ggui: EnableCapture unimplemented", "enable", enable)
}

// ApplyChanges is a no-op.
func (s *Surface) ApplyChanges() {}

// Close releases cursors, textures and atlases, then the host window and
// renderer. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.freeCursors()
	s.textures.DestroyAll()
	s.atlases.Reset()
	s.font = nil
	s.atlas = nil
	s.active = nil

	return s.host.Close()
}
