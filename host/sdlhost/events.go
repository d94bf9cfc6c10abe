// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/ggui/host"
)

// PollEvent implements host.EventQueue.
func (h *Host) PollEvent() (host.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return nil, false
	}
	return convertEvent(ev), true
}

func convertEvent(ev sdl.Event) host.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return host.QuitEvent{}
	case *sdl.MouseMotionEvent:
		return host.PointerMotionEvent{X: int(e.X), Y: int(e.Y)}
	case *sdl.MouseButtonEvent:
		return host.PointerButtonEvent{
			Button: host.Button(e.Button),
			Down:   e.State == sdl.PRESSED,
			X:      int(e.X),
			Y:      int(e.Y),
		}
	case *sdl.MouseWheelEvent:
		return host.WheelEvent{X: int(e.X), Y: int(e.Y)}
	case *sdl.KeyboardEvent:
		return host.KeyEvent{
			Scancode: host.Scancode(e.Keysym.Scancode),
			Down:     e.State == sdl.PRESSED,
			Repeat:   e.Repeat != 0,
		}
	default:
		return host.OtherEvent{Type: ev.GetType()}
	}
}
