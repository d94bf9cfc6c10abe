// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

// EventQueue is the platform event queue.
type EventQueue interface {
	// PollEvent removes and returns the oldest pending event.
	// It never blocks; ok is false when the queue is empty.
	PollEvent() (ev Event, ok bool)
}

// Event is one platform event. The set of implementations is closed.
type Event interface {
	isEvent()
}

// Button identifies a native pointer button.
type Button uint8

// Native button numbers, matching SDL.
const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
	ButtonX1     Button = 4
	ButtonX2     Button = 5
)

// PointerMotionEvent reports the pointer position in window coordinates.
type PointerMotionEvent struct {
	X int
	Y int
}

// PointerButtonEvent reports a button press or release.
type PointerButtonEvent struct {
	Button Button
	Down   bool
	X      int
	Y      int
}

// WheelEvent reports a scroll wheel movement.
// X is the horizontal component, Y the vertical one.
type WheelEvent struct {
	X int
	Y int
}

// KeyEvent reports a physical key press or release.
type KeyEvent struct {
	Scancode Scancode
	Down     bool
	Repeat   bool
}

// QuitEvent is posted when the user asks to close the application.
type QuitEvent struct{}

// OtherEvent carries a platform event with no translation.
type OtherEvent struct {
	Type uint32
}

func (PointerMotionEvent) isEvent() {}
func (PointerButtonEvent) isEvent() {}
func (WheelEvent) isEvent()         {}
func (KeyEvent) isEvent()           {}
func (QuitEvent) isEvent()          {}
func (OtherEvent) isEvent()         {}

// Scancode is a physical key position. Values follow the USB HID usage
// table, which SDL scancodes share.
type Scancode uint16

// Scancodes used by the key map. The digit row starts at 1 and ends at 0.
const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = 4
	ScancodeZ Scancode = 29

	Scancode1 Scancode = 30
	Scancode9 Scancode = 38
	Scancode0 Scancode = 39

	ScancodeReturn    Scancode = 40
	ScancodeEscape    Scancode = 41
	ScancodeBackspace Scancode = 42
	ScancodeTab       Scancode = 43
	ScancodeSpace     Scancode = 44

	ScancodeF1  Scancode = 58
	ScancodeF12 Scancode = 69

	ScancodeRight Scancode = 79
	ScancodeLeft  Scancode = 80
	ScancodeDown  Scancode = 81
	ScancodeUp    Scancode = 82
)
