// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdlhost implements a host on top of SDL2 through
// github.com/veandco/go-sdl2. It registers itself as "sdl" with
// priority 100.
//
// All calls must happen on the main OS thread; commands should call
// runtime.LockOSThread from an init function.
package sdlhost

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/host"
)

func init() {
	host.Register("sdl", 100, New, nil)
}

// Host is an SDL2 window with an accelerated renderer.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	closed   bool
}

// New initializes the SDL video and event subsystems and creates a window
// with a renderer attached.
func New(opts host.Options) (host.Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: init: %w", err)
	}

	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Width), int32(opts.Height), //nolint:gosec // window sizes fit in int32
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl: create renderer: %w", err)
	}

	ggui.Logger().Info("sdl: window created", "width", opts.Width, "height", opts.Height)
	return &Host{window: window, renderer: renderer}, nil
}

// SetTitle implements host.Window.
func (h *Host) SetTitle(title string) {
	h.window.SetTitle(title)
}

// Flags implements host.Window.
func (h *Host) Flags() host.WindowFlags {
	var f host.WindowFlags
	flags := h.window.GetFlags()
	if flags&sdl.WINDOW_INPUT_FOCUS != 0 {
		f |= host.FlagInputFocus
	}
	if flags&sdl.WINDOW_MOUSE_FOCUS != 0 {
		f |= host.FlagMouseFocus
	}
	return f
}

// GlobalMousePosition implements host.Window.
func (h *Host) GlobalMousePosition() (x, y int) {
	mx, my, _ := sdl.GetGlobalMouseState()
	return int(mx), int(my)
}

// SetDrawColor implements host.Renderer.
func (h *Host) SetDrawColor(c color.RGBA) {
	_ = h.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// SetBlendMode implements host.Renderer.
func (h *Host) SetBlendMode(m host.BlendMode) {
	_ = h.renderer.SetDrawBlendMode(blendMode(m))
}

// FillRect implements host.Renderer.
func (h *Host) FillRect(r host.Rect) error {
	rect := sdlRect(r)
	return h.renderer.FillRect(&rect)
}

// DrawRect implements host.Renderer.
func (h *Host) DrawRect(r host.Rect) error {
	rect := sdlRect(r)
	return h.renderer.DrawRect(&rect)
}

// CreateTexture implements host.Renderer.
// The pixels are copied into a temporary RGBA32 surface which is then
// uploaded and freed.
func (h *Host) CreateTexture(rgba []byte, width, height int) (host.Texture, error) {
	if width <= 0 || height <= 0 || len(rgba) < width*height*4 {
		return nil, fmt.Errorf("sdl: texture data %dx%d with %d bytes", width, height, len(rgba))
	}

	surf, err := sdl.CreateRGBSurfaceWithFormat(0, int32(width), int32(height), 32, sdl.PIXELFORMAT_RGBA32) //nolint:gosec // texture sizes fit in int32
	if err != nil {
		return nil, fmt.Errorf("sdl: create surface: %w", err)
	}
	defer surf.Free()

	pixels := surf.Pixels()
	pitch := int(surf.Pitch)
	row := width * 4
	for y := 0; y < height; y++ {
		copy(pixels[y*pitch:y*pitch+row], rgba[y*row:(y+1)*row])
	}

	tex, err := h.renderer.CreateTextureFromSurface(surf)
	if err != nil {
		return nil, fmt.Errorf("sdl: create texture: %w", err)
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		_ = tex.Destroy()
		return nil, fmt.Errorf("sdl: texture blend mode: %w", err)
	}
	return &Texture{tex: tex, width: width, height: height}, nil
}

// DrawTexture implements host.Renderer.
func (h *Host) DrawTexture(t host.Texture, src *host.Rect, dst host.Rect, tint color.RGBA) error {
	tex, ok := t.(*Texture)
	if !ok || tex.tex == nil {
		return fmt.Errorf("sdl: texture %T not created by this host", t)
	}

	_ = tex.tex.SetColorMod(tint.R, tint.G, tint.B)
	_ = tex.tex.SetAlphaMod(tint.A)

	var srcRect *sdl.Rect
	if src != nil {
		r := sdlRect(*src)
		srcRect = &r
	}
	dstRect := sdlRect(dst)
	return h.renderer.Copy(tex.tex, srcRect, &dstRect)
}

// SetViewport implements host.Renderer.
func (h *Host) SetViewport(r *host.Rect) error {
	if r == nil {
		return h.renderer.SetViewport(nil)
	}
	rect := sdlRect(*r)
	return h.renderer.SetViewport(&rect)
}

// OutputSize implements host.Renderer.
func (h *Host) OutputSize() (width, height int) {
	w, hh, err := h.renderer.GetOutputSize()
	if err != nil {
		return 0, 0
	}
	return int(w), int(hh)
}

// Present implements host.Renderer.
func (h *Host) Present() {
	h.renderer.Present()
}

// Close implements host.Host.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	var firstErr error
	if err := h.renderer.Destroy(); err != nil {
		firstErr = fmt.Errorf("sdl: destroy renderer: %w", err)
	}
	if err := h.window.Destroy(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("sdl: destroy window: %w", err)
	}
	return firstErr
}

// Shutdown implements host.Host.
func (h *Host) Shutdown() {
	sdl.Quit()
}

func sdlRect(r host.Rect) sdl.Rect {
	//nolint:gosec // pixel coordinates fit in int32
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

func blendMode(m host.BlendMode) sdl.BlendMode {
	if m == host.BlendNone {
		return sdl.BLENDMODE_NONE
	}
	return sdl.BLENDMODE_BLEND
}

// Texture wraps an SDL texture.
type Texture struct {
	tex    *sdl.Texture
	width  int
	height int
}

// Size implements host.Texture.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Destroy implements host.Texture.
func (t *Texture) Destroy() {
	if t.tex == nil {
		return
	}
	if err := t.tex.Destroy(); err != nil {
		ggui.Logger().Warn("sdl: destroy texture", "err", err)
	}
	t.tex = nil
}

var _ host.Host = (*Host)(nil)
