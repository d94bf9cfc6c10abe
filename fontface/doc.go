// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fontface provides byte-oriented ggui fonts backed by
// golang.org/x/image faces.
//
// A [Face] maps each of the 256 byte codes to a rune through a single-byte
// character set (Windows-1252 by default), measures the glyph with the
// wrapped font.Face and renders it as white pixels whose alpha is the glyph
// coverage. Tinting to the text color happens when the atlas is drawn.
//
// Faces can be created from TrueType/OpenType data ([NewTrueType]), from the
// bundled Go Regular font ([Default]) or from the built-in 7x13 bitmap font
// ([Fixed]).
package fontface
