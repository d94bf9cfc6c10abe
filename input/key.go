// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"fmt"

	"github.com/gogpu/ggui/host"
)

// Key is a toolkit key code.
type Key int

// KeyNone is the sentinel for scan codes with no toolkit key.
const KeyNone Key = -1

// Key codes. Digits and letters are contiguous so ranges of scan codes map
// onto them by offset.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEnter
	KeySpace
	KeyBackspace
	KeyTab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	numKeys
)

// String returns a readable key name.
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "none"
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	switch k {
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// KeyRange maps the inclusive scan code range [First, Last] onto
// consecutive keys starting at Base.
type KeyRange struct {
	First host.Scancode
	Last  host.Scancode
	Base  Key
}

// KeyMap resolves scan codes to keys. Ranges are checked in order, then the
// named table.
type KeyMap struct {
	Ranges []KeyRange
	Named  map[host.Scancode]Key
}

// DefaultKeyMap returns the map for digits, function keys, letters and the
// few named keys the toolkit understands.
//
// The digit row runs 1 through 9 followed by 0, so it takes two ranges.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Ranges: []KeyRange{
			{First: host.Scancode1, Last: host.Scancode9, Base: Key1},
			{First: host.Scancode0, Last: host.Scancode0, Base: Key0},
			{First: host.ScancodeF1, Last: host.ScancodeF12, Base: KeyF1},
			{First: host.ScancodeA, Last: host.ScancodeZ, Base: KeyA},
		},
		Named: map[host.Scancode]Key{
			host.ScancodeBackspace: KeyBackspace,
			host.ScancodeTab:       KeyTab,
			host.ScancodeReturn:    KeyEnter,
			host.ScancodeSpace:     KeySpace,
		},
	}
}

// Lookup returns the key for sc, or KeyNone.
func (m *KeyMap) Lookup(sc host.Scancode) Key {
	for _, r := range m.Ranges {
		if sc >= r.First && sc <= r.Last {
			return r.Base + Key(sc-r.First)
		}
	}
	if k, ok := m.Named[sc]; ok {
		return k
	}
	return KeyNone
}
