// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"image"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/input"
)

const checkerSize = 32

// demo is a minimal toolkit: a background panel, a checkerboard texture and
// a status line that follows the input it receives.
type demo struct {
	root    *ggui.StaticPanel
	content *ggui.StaticPanel
	font    ggui.Font

	checker int
	pointer image.Point
	buttons int
	wheel   int
	typed   []byte
	ticks   int
}

func newDemo(width, height int, font ggui.Font) *demo {
	bounds := image.Rect(0, 0, width, height)
	return &demo{
		root: &ggui.StaticPanel{Bounds: bounds},
		content: &ggui.StaticPanel{
			Bounds: bounds.Inset(16),
			Inset:  ggui.Insets{Left: 8, Top: 8, Right: 8, Bottom: 8},
		},
		font:    font,
		checker: -1,
	}
}

// Init uploads the demo texture and selects the text font.
func (d *demo) Init(b ggui.Backend) error {
	d.checker = b.AllocateTextureID()
	if err := b.UploadTextureRGBA(d.checker, checkerboard(checkerSize), checkerSize, checkerSize); err != nil {
		return err
	}
	return b.SetTextFont(d.font)
}

func (d *demo) Tick() {
	d.ticks++
}

func (d *demo) Paint(b ggui.Backend) {
	root := b.PushViewport(d.root, false)
	b.SetDrawColor(32, 36, 48, 255)
	b.FillRect(0, 0, d.root.Bounds.Dx(), d.root.Bounds.Dy())
	b.SetCursor(d.cursor())
	b.PopViewport(root)

	v := b.PushViewport(d.content, true)
	w, h := d.content.Bounds.Dx()-16, d.content.Bounds.Dy()-16

	b.SetDrawColor(64, 72, 96, 192)
	b.FillRect(0, 0, w, h)
	b.SetDrawColor(200, 200, 220, 255)
	b.OutlineRect(0, 0, w, h)

	b.BindTexture(d.checker)
	b.SetDrawColor(255, 255, 255, 255)
	b.TexturedRect(8, 8, 8+2*checkerSize, 8+2*checkerSize)

	b.SetTextColor(240, 240, 240, 255)
	b.SetTextCursor(8+2*checkerSize+8, 8)
	b.DrawText("ggui demo")

	b.SetTextColor(180, 200, 255, 255)
	b.SetTextCursor(8+2*checkerSize+8, 8+d.font.LineHeight())
	b.DrawText(d.status())

	b.PopViewport(v)
}

// cursor hides the pointer over the root panel and shows the arrow over
// the content panel.
func (d *demo) cursor() ggui.CursorKind {
	if d.pointer.In(d.content.Bounds) {
		return ggui.CursorArrow
	}
	return ggui.CursorNone
}

func (d *demo) status() string {
	return fmt.Sprintf("frame %d  pointer %d,%d  buttons %d  wheel %d  typed %q",
		d.ticks, d.pointer.X, d.pointer.Y, d.buttons, d.wheel, d.typed)
}

func (d *demo) PointerMoved(x, y int) {
	d.pointer = image.Pt(x, y)
}

func (d *demo) PointerPressed(input.Button) {
	d.buttons++
}

func (d *demo) PointerReleased(input.Button) {}

func (d *demo) WheelScrolled(delta int) {
	d.wheel += delta
}

func (d *demo) KeyPressed(input.Key) {}

func (d *demo) KeyTyped(k input.Key) {
	switch {
	case k >= input.KeyA && k <= input.KeyZ:
		d.typed = append(d.typed, byte('a'+k-input.KeyA))
	case k >= input.Key0 && k <= input.Key9:
		d.typed = append(d.typed, byte('0'+k-input.Key0))
	case k == input.KeySpace:
		d.typed = append(d.typed, ' ')
	case k == input.KeyBackspace && len(d.typed) > 0:
		d.typed = d.typed[:len(d.typed)-1]
	}
	if len(d.typed) > 24 {
		d.typed = d.typed[len(d.typed)-24:]
	}
}

func (d *demo) KeyReleased(input.Key) {}

// checkerboard returns size x size RGBA pixels in 8px squares.
func checkerboard(size int) []byte {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			v := byte(80)
			if (x/8+y/8)%2 == 0 {
				v = 220
			}
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	return pix
}
