// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input translates host events into toolkit input calls.
//
// A [Translator] drains a host event queue once per frame and forwards
// pointer motion, button, wheel and key events to a [Sink]. Scan codes are
// resolved to toolkit [Key] codes through a [KeyMap]; anything the map does
// not know is dropped. A quit event moves the translator into the terminal
// [StateExitRequested] state, which the frame loop acts on.
package input
