// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"strings"
	"testing"

	"github.com/gogpu/ggui/host"
)

func TestLookupDigitsKeepOrder(t *testing.T) {
	m := DefaultKeyMap()

	for sc := host.Scancode1; sc <= host.Scancode9; sc++ {
		want := Key1 + Key(sc-host.Scancode1)
		if got := m.Lookup(sc); got != want {
			t.Errorf("Lookup(%d) = %v, want %v", sc, got, want)
		}
	}
	if got := m.Lookup(host.Scancode0); got != Key0 {
		t.Errorf("Lookup(0) = %v, want 0", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		sc   host.Scancode
		want Key
	}{
		{host.ScancodeA, KeyA},
		{host.ScancodeA + 7, KeyH},
		{host.ScancodeZ, KeyZ},
		{host.ScancodeF1, KeyF1},
		{host.ScancodeF1 + 4, KeyF5},
		{host.ScancodeF12, KeyF12},
		{host.ScancodeReturn, KeyEnter},
		{host.ScancodeSpace, KeySpace},
		{host.ScancodeBackspace, KeyBackspace},
		{host.ScancodeTab, KeyTab},
		{host.ScancodeUnknown, KeyNone},
		{host.ScancodeEscape, KeyNone},
		{host.ScancodeLeft, KeyNone},
		{host.ScancodeA - 1, KeyNone},
		{host.ScancodeF12 + 1, KeyNone},
		{500, KeyNone},
	}

	m := DefaultKeyMap()
	for _, tt := range tests {
		if got := m.Lookup(tt.sc); got != tt.want {
			t.Errorf("Lookup(%d) = %v, want %v", tt.sc, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		Key0:         "0",
		Key9:         "9",
		KeyQ:         "Q",
		KeyF10:       "F10",
		KeyTab:       "tab",
		KeyNone:      "none",
		numKeys + 10: "Key(62)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}

	for k := Key0; k < numKeys; k++ {
		if strings.HasPrefix(k.String(), "Key(") {
			t.Errorf("key %d has no name", int(k))
		}
	}
}
