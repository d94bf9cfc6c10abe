// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontface

import (
	"bytes"
	"errors"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("fontface: empty font data")

// DefaultDPI is the resolution sizes are interpreted at.
const DefaultDPI = 72

// NewTrueType creates a face from TrueType or OpenType data at size points
// and dpi (DefaultDPI when zero).
//
// Glyph coverage comes from the font's character map: byte codes whose rune
// the font does not map get no glyph, instead of the font's .notdef box.
func NewTrueType(data []byte, size, dpi float64, opts ...Option) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontface: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontface: create face: %w", err)
	}

	coverage, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontface: read character map: %w", err)
	}
	covers := func(r rune) bool {
		_, ok := coverage.NominalGlyph(r)
		return ok
	}

	name, _ := parsed.Name(nil, sfnt.NameIDFull)
	opts = append([]Option{WithName(name), withCoverage(covers)}, opts...)
	return New(face, opts...), nil
}

// Default returns a face over the bundled Go Regular font at size points.
func Default(size float64, opts ...Option) (*Face, error) {
	return NewTrueType(goregular.TTF, size, DefaultDPI, opts...)
}
