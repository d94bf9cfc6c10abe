// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggui/host"
)

// Errors.
var (
	// ErrInvalidTexture is returned when texture pixels do not match
	// the requested dimensions.
	ErrInvalidTexture = errors.New("soft: invalid texture data")

	// ErrForeignTexture is returned when a texture from another host is drawn.
	ErrForeignTexture = errors.New("soft: texture was not created by this host")

	// ErrClosed is returned when drawing after Close.
	ErrClosed = errors.New("soft: host is closed")
)

// CallKind identifies a recorded draw call.
type CallKind uint8

const (
	CallFill CallKind = iota
	CallOutline
	CallTexture
)

// Release identifies a resource release, in the order ReleaseLog reports them.
type Release uint8

const (
	ReleaseCursor Release = iota
	ReleaseTexture
	ReleaseHost
)

// String returns the release name.
func (r Release) String() string {
	switch r {
	case ReleaseCursor:
		return "cursor"
	case ReleaseTexture:
		return "texture"
	case ReleaseHost:
		return "host"
	default:
		return fmt.Sprintf("Release(%d)", r)
	}
}

// Call records one draw call issued to the renderer.
type Call struct {
	Kind     CallKind
	Rect     host.Rect // destination, viewport-relative
	Src      *host.Rect
	Blend    host.BlendMode // blend mode set at the time of the call
	Color    color.RGBA     // draw color or texture tint
	Texture  *Texture
	Viewport host.Rect
}

// Host is a headless host that renders into an *image.RGBA.
//
// It records every draw call, which makes it the reference host for tests,
// and serves as the fallback backend when no display is available.
//
// Example:
//
//	h := soft.New(host.Options{Width: 320, Height: 240})
//	defer h.Close()
//
//	h.SetDrawColor(color.RGBA{255, 0, 0, 255})
//	_ = h.FillRect(host.Rect{X: 10, Y: 10, W: 50, H: 50})
//	h.Present()
//	img := h.Snapshot()
type Host struct {
	width  int
	height int
	img    *image.RGBA

	title   string
	flags   host.WindowFlags
	pointer image.Point

	drawColor color.RGBA
	blend     host.BlendMode
	viewport  *host.Rect

	calls     []Call
	viewports []*host.Rect
	releases  []Release
	frames    int
	textures  map[*Texture]struct{}

	cursors
	queue

	closed   bool
	shutdown bool
}

// Option configures a software host.
type Option func(*Host)

// WithFlags sets the initial window flags.
func WithFlags(f host.WindowFlags) Option {
	return func(h *Host) {
		h.flags = f
	}
}

// WithEvents preloads the event queue.
func WithEvents(events ...host.Event) Option {
	return func(h *Host) {
		h.Push(events...)
	}
}

// New creates a software host with a framebuffer of the given size.
func New(opts host.Options, o ...Option) *Host {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	h := &Host{
		width:     width,
		height:    height,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		title:     opts.Title,
		flags:     host.FlagInputFocus | host.FlagMouseFocus,
		drawColor: color.RGBA{A: 255},
		textures:  make(map[*Texture]struct{}),
		cursors:   newCursors(),
	}
	h.cursors.onFree = func() { h.release(ReleaseCursor) }
	for _, fn := range o {
		fn(h)
	}
	return h
}

func init() {
	host.Register("software", 10, func(opts host.Options) (host.Host, error) {
		return New(opts), nil
	}, nil)
}

// SetTitle implements host.Window.
func (h *Host) SetTitle(title string) {
	h.title = title
}

// Title returns the window title.
func (h *Host) Title() string {
	return h.title
}

// Flags implements host.Window.
func (h *Host) Flags() host.WindowFlags {
	return h.flags
}

// SetFlags replaces the window flags.
func (h *Host) SetFlags(f host.WindowFlags) {
	h.flags = f
}

// GlobalMousePosition implements host.Window.
func (h *Host) GlobalMousePosition() (x, y int) {
	return h.pointer.X, h.pointer.Y
}

// SetPointer moves the simulated pointer.
func (h *Host) SetPointer(x, y int) {
	h.pointer = image.Pt(x, y)
}

// SetDrawColor implements host.Renderer.
func (h *Host) SetDrawColor(c color.RGBA) {
	h.drawColor = c
}

// SetBlendMode implements host.Renderer.
func (h *Host) SetBlendMode(m host.BlendMode) {
	h.blend = m
}

// FillRect implements host.Renderer.
func (h *Host) FillRect(r host.Rect) error {
	if h.closed {
		return ErrClosed
	}
	h.record(Call{Kind: CallFill, Rect: r, Color: h.drawColor})

	h.fill(h.toImage(r), h.drawColor)
	return nil
}

// DrawRect implements host.Renderer.
func (h *Host) DrawRect(r host.Rect) error {
	if h.closed {
		return ErrClosed
	}
	h.record(Call{Kind: CallOutline, Rect: r, Color: h.drawColor})

	if r.Empty() {
		return nil
	}
	b := h.toImage(r)
	c := h.drawColor
	h.fill(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+1), c)
	h.fill(image.Rect(b.Min.X, b.Max.Y-1, b.Max.X, b.Max.Y), c)
	h.fill(image.Rect(b.Min.X, b.Min.Y+1, b.Min.X+1, b.Max.Y-1), c)
	h.fill(image.Rect(b.Max.X-1, b.Min.Y+1, b.Max.X, b.Max.Y-1), c)
	return nil
}

// CreateTexture implements host.Renderer.
// Pixels are straight (non-premultiplied) RGBA.
func (h *Host) CreateTexture(rgba []byte, width, height int) (host.Texture, error) {
	if h.closed {
		return nil, ErrClosed
	}
	if width <= 0 || height <= 0 || len(rgba) < width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidTexture, width, height, len(rgba))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba[:width*height*4])

	t := &Texture{img: img, owner: h}
	h.textures[t] = struct{}{}
	return t, nil
}

// DrawTexture implements host.Renderer.
func (h *Host) DrawTexture(t host.Texture, src *host.Rect, dst host.Rect, tint color.RGBA) error {
	if h.closed {
		return ErrClosed
	}
	tex, ok := t.(*Texture)
	if !ok || tex.owner != h || tex.img == nil {
		return ErrForeignTexture
	}
	h.record(Call{Kind: CallTexture, Rect: dst, Src: src, Color: tint, Texture: tex})

	sr := tex.img.Bounds()
	if src != nil {
		sr = image.Rect(src.X, src.Y, src.X+src.W, src.Y+src.H).Intersect(sr)
	}
	if sr.Empty() || dst.Empty() {
		return nil
	}

	var source image.Image = tex.img.SubImage(sr)
	if tint != (color.RGBA{255, 255, 255, 255}) {
		source = tinted(tex.img, sr, tint)
	}

	clip := h.clipRect()
	target, ok := h.img.SubImage(clip).(*image.RGBA)
	if !ok {
		return nil
	}
	xdraw.NearestNeighbor.Scale(target, h.toImage(dst), source, sr, draw.Over, nil)
	return nil
}

// SetViewport implements host.Renderer.
func (h *Host) SetViewport(r *host.Rect) error {
	if r == nil {
		h.viewport = nil
	} else {
		v := *r
		h.viewport = &v
	}
	h.viewports = append(h.viewports, h.viewport)
	return nil
}

// Viewport returns the active viewport, or nil when drawing to the full output.
func (h *Host) Viewport() *host.Rect {
	return h.viewport
}

// Viewports returns every viewport set so far, nil entries being resets.
func (h *Host) Viewports() []*host.Rect {
	return h.viewports
}

// OutputSize implements host.Renderer.
func (h *Host) OutputSize() (width, height int) {
	return h.width, h.height
}

// Present implements host.Renderer.
func (h *Host) Present() {
	h.frames++
}

// Frames returns the number of presented frames.
func (h *Host) Frames() int {
	return h.frames
}

// Calls returns the recorded draw calls.
func (h *Host) Calls() []Call {
	return h.calls
}

// ResetCalls clears the recorded draw calls.
func (h *Host) ResetCalls() {
	h.calls = h.calls[:0]
}

// LiveTextures returns the number of textures not yet destroyed.
func (h *Host) LiveTextures() int {
	return len(h.textures)
}

// Clear fills the framebuffer with c, ignoring viewport and blend mode.
func (h *Host) Clear(c color.Color) {
	draw.Draw(h.img, h.img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the framebuffer.
func (h *Host) Snapshot() *image.RGBA {
	result := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	copy(result.Pix, h.img.Pix)
	return result
}

// SavePNG writes the framebuffer to a PNG file.
func (h *Host) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return fmt.Errorf("soft: create snapshot: %w", err)
	}
	if err := png.Encode(f, h.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("soft: encode snapshot: %w", err)
	}
	return f.Close()
}

// Close implements host.Host. Textures and cursors still alive are released
// after the host itself and show up behind ReleaseHost in ReleaseLog.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	h.release(ReleaseHost)
	for t := range h.textures {
		t.Destroy()
	}
	h.cursors.freeAll()
	h.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (h *Host) Closed() bool {
	return h.closed
}

// Shutdown implements host.Host.
func (h *Host) Shutdown() {
	h.shutdown = true
}

// IsShutdown reports whether Shutdown has been called.
func (h *Host) IsShutdown() bool {
	return h.shutdown
}

// ReleaseLog returns every texture destruction, cursor free and host close
// in the order they happened.
func (h *Host) ReleaseLog() []Release {
	return h.releases
}

func (h *Host) release(r Release) {
	h.releases = append(h.releases, r)
}

func (h *Host) record(c Call) {
	c.Blend = h.blend
	if h.viewport != nil {
		c.Viewport = *h.viewport
	} else {
		c.Viewport = host.Rect{W: h.width, H: h.height}
	}
	h.calls = append(h.calls, c)
}

// op maps the current blend mode to a Porter-Duff operator for primitives.
func (h *Host) op() draw.Op {
	if h.blend == host.BlendNone {
		return draw.Src
	}
	return draw.Over
}

// clipRect returns the framebuffer area drawing may touch.
func (h *Host) clipRect() image.Rectangle {
	b := h.img.Bounds()
	if h.viewport == nil {
		return b
	}
	v := h.viewport
	return image.Rect(v.X, v.Y, v.X+v.W, v.Y+v.H).Intersect(b)
}

// toImage converts a viewport-relative rect to framebuffer coordinates.
func (h *Host) toImage(r host.Rect) image.Rectangle {
	x, y := r.X, r.Y
	if h.viewport != nil {
		x += h.viewport.X
		y += h.viewport.Y
	}
	return image.Rect(x, y, x+r.W, y+r.H)
}

func (h *Host) fill(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(h.clipRect())
	if r.Empty() {
		return
	}
	// color.RGBA is premultiplied; the renderer draw color is straight.
	src := &image.Uniform{color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}}
	draw.Draw(h.img, r, src, image.Point{}, h.op())
}

// tinted returns the sr region of img with every texel modulated by tint.
func tinted(img *image.NRGBA, sr image.Rectangle, tint color.RGBA) *image.NRGBA {
	out := image.NewNRGBA(sr)
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			i := img.PixOffset(x, y)
			j := out.PixOffset(x, y)
			out.Pix[j+0] = mul8(img.Pix[i+0], tint.R)
			out.Pix[j+1] = mul8(img.Pix[i+1], tint.G)
			out.Pix[j+2] = mul8(img.Pix[i+2], tint.B)
			out.Pix[j+3] = mul8(img.Pix[i+3], tint.A)
		}
	}
	return out
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255) //nolint:gosec // result is at most 255
}

// Texture is a software texture backed by an *image.NRGBA.
type Texture struct {
	img   *image.NRGBA
	owner *Host
}

// Size implements host.Texture.
func (t *Texture) Size() (width, height int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Destroy implements host.Texture.
func (t *Texture) Destroy() {
	if t.img == nil {
		return
	}
	t.img = nil
	delete(t.owner.textures, t)
	t.owner.release(ReleaseTexture)
}

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool {
	return t.img == nil
}

// Image returns the texture pixels.
func (t *Texture) Image() *image.NRGBA {
	return t.img
}

var _ host.Host = (*Host)(nil)
