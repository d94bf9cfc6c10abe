// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"fmt"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/host"
)

// Button is a toolkit pointer button.
type Button uint8

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", b)
	}
}

// Sink is the toolkit's input pipeline.
type Sink interface {
	PointerMoved(x, y int)
	PointerPressed(b Button)
	PointerReleased(b Button)
	WheelScrolled(delta int)
	KeyPressed(k Key)
	KeyTyped(k Key)
	KeyReleased(k Key)
}

// State is the translator state after a drain.
type State uint8

const (
	// StateRunning means the application keeps going.
	StateRunning State = iota

	// StateExitRequested is terminal: the platform asked the application
	// to quit. Further drains do nothing.
	StateExitRequested
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExitRequested:
		return "exit-requested"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Option configures a Translator.
type Option func(*Translator)

// WithKeyMap replaces the default key map.
func WithKeyMap(m *KeyMap) Option {
	return func(t *Translator) {
		if m != nil {
			t.keys = m
		}
	}
}

// Translator forwards host events to a Sink.
//
// Translator is not safe for concurrent use.
type Translator struct {
	queue host.EventQueue
	sink  Sink
	keys  *KeyMap
	state State
}

// NewTranslator creates a translator reading from q and dispatching to sink.
func NewTranslator(q host.EventQueue, sink Sink, opts ...Option) *Translator {
	t := &Translator{
		queue: q,
		sink:  sink,
		keys:  DefaultKeyMap(),
	}
	for _, fn := range opts {
		fn(t)
	}
	return t
}

// State returns the current state.
func (t *Translator) State() State {
	return t.state
}

// Drain dispatches every pending event and returns the resulting state.
// It never blocks. Draining stops at a quit event; events queued after it
// are left in the queue.
func (t *Translator) Drain() State {
	for t.state == StateRunning {
		ev, ok := t.queue.PollEvent()
		if !ok {
			break
		}
		t.dispatch(ev)
	}
	return t.state
}

func (t *Translator) dispatch(ev host.Event) {
	switch e := ev.(type) {
	case host.PointerMotionEvent:
		t.sink.PointerMoved(e.X, e.Y)

	case host.PointerButtonEvent:
		b, ok := mapButton(e.Button)
		if !ok {
			return
		}
		if e.Down {
			t.sink.PointerPressed(b)
		} else {
			t.sink.PointerReleased(b)
		}

	case host.WheelEvent:
		// The toolkit receives the horizontal component.
		t.sink.WheelScrolled(e.X)

	case host.KeyEvent:
		k := t.keys.Lookup(e.Scancode)
		if k == KeyNone {
			return
		}
		if e.Down {
			t.sink.KeyPressed(k)
			t.sink.KeyTyped(k)
		} else {
			t.sink.KeyReleased(k)
		}

	case host.QuitEvent:
		ggui.Logger().Info("input: quit requested")
		t.state = StateExitRequested
	}
}

func mapButton(b host.Button) (Button, bool) {
	switch b {
	case host.ButtonLeft:
		return ButtonLeft, true
	case host.ButtonRight:
		return ButtonRight, true
	case host.ButtonMiddle:
		return ButtonMiddle, true
	default:
		return 0, false
	}
}
