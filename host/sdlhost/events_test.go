// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdlhost

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/ggui/host"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		in   sdl.Event
		want host.Event
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, host.QuitEvent{}},
		{"motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 3, Y: 4}, host.PointerMotionEvent{X: 3, Y: 4}},
		{
			"button down",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, State: sdl.PRESSED, X: 1, Y: 2},
			host.PointerButtonEvent{Button: host.ButtonRight, Down: true, X: 1, Y: 2},
		},
		{"wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3, Y: -1}, host.WheelEvent{X: 3, Y: -1}},
		{
			"key up",
			&sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}},
			host.KeyEvent{Scancode: host.ScancodeA},
		},
		{"other", &sdl.WindowEvent{Type: sdl.WINDOWEVENT}, host.OtherEvent{Type: sdl.WINDOWEVENT}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertEvent(tt.in); got != tt.want {
				t.Errorf("convertEvent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestScancodesMatchSDL(t *testing.T) {
	pairs := []struct {
		ours host.Scancode
		sdl  sdl.Scancode
	}{
		{host.ScancodeA, sdl.SCANCODE_A},
		{host.ScancodeZ, sdl.SCANCODE_Z},
		{host.Scancode1, sdl.SCANCODE_1},
		{host.Scancode0, sdl.SCANCODE_0},
		{host.ScancodeReturn, sdl.SCANCODE_RETURN},
		{host.ScancodeBackspace, sdl.SCANCODE_BACKSPACE},
		{host.ScancodeTab, sdl.SCANCODE_TAB},
		{host.ScancodeSpace, sdl.SCANCODE_SPACE},
		{host.ScancodeF1, sdl.SCANCODE_F1},
		{host.ScancodeF12, sdl.SCANCODE_F12},
	}
	for _, p := range pairs {
		if host.Scancode(p.sdl) != p.ours {
			t.Errorf("scancode %d does not match SDL value %d", p.ours, p.sdl)
		}
	}
}
