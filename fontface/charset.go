// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fontface

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnknownCharset is returned for character set names Charset does not know.
var ErrUnknownCharset = errors.New("fontface: unknown charset")

// DefaultCharset is the character set used when none is given.
const DefaultCharset = "windows-1252"

var charsets = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"koi8-r":       charmap.KOI8R,
}

// Charset returns the single-byte character set called name.
// Names are case-insensitive.
func Charset(name string) (*charmap.Charmap, error) {
	if name == "" {
		name = DefaultCharset
	}
	cm, ok := charsets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return cm, nil
}

// decodeTable returns the rune of every byte code in cm. Control codes and
// codes the charset leaves undefined map to -1; they never have a glyph.
func decodeTable(cm *charmap.Charmap) [256]rune {
	var table [256]rune
	for i := range table {
		r := cm.DecodeByte(byte(i))
		if r < 0x20 || (r >= 0x7F && r < 0xA0) || r == utf8.RuneError {
			r = -1
		}
		table[i] = r
	}
	return table
}
