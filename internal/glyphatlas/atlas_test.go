// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphatlas

import (
	"errors"
	"testing"
)

// gridFont reports the same metrics for every code and paints each glyph
// cell with its code in the red channel.
type gridFont struct {
	id     int
	height int
	width  int

	outOfBounds int
}

func (f *gridFont) ID() int         { return f.id }
func (f *gridFont) LineHeight() int { return f.height }

func (f *gridFont) CharMetrics(byte) (a, b, c int) {
	return 1, f.width, 2
}

func (f *gridFont) CharRGBA(code byte, x, y, canvasW, canvasH int, rgba []byte) {
	if len(rgba) != canvasW*canvasH*4 {
		f.outOfBounds++
		return
	}
	for yy := y; yy < y+f.height; yy++ {
		for xx := x; xx < x+min(f.width, Width-Padding); xx++ {
			if xx >= canvasW || yy >= canvasH {
				f.outOfBounds++
				return
			}
			i := (yy*canvasW + xx) * 4
			rgba[i] = code
			rgba[i+3] = 255
		}
	}
}

type fakeSink struct {
	next    int
	limit   int
	uploads map[int][]byte
	sizes   map[int][2]int
}

func newFakeSink() *fakeSink {
	return &fakeSink{limit: 1 << 20, uploads: map[int][]byte{}, sizes: map[int][2]int{}}
}

var errFull = errors.New("full")

func (s *fakeSink) Allocate() (int, error) {
	if s.next >= s.limit {
		return -1, errFull
	}
	s.next++
	return s.next - 1, nil
}

func (s *fakeSink) Replace(id int, rgba []byte, w, h int) error {
	s.uploads[id] = rgba
	s.sizes[id] = [2]int{w, h}
	return nil
}

func TestIsSpace(t *testing.T) {
	for i := 0; i < 256; i++ {
		code := byte(i)
		want := code == ' ' || (code >= '\t' && code <= '\r')
		if got := IsSpace(code); got != want {
			t.Errorf("IsSpace(%#x) = %v, want %v", code, got, want)
		}
	}
}

func TestPackGlyphsPerRow(t *testing.T) {
	atlas, _ := Pack(&gridFont{id: 1, height: 12, width: 10})

	perRow := Width / (10 + Padding)
	rowOf := map[int]int{}
	for i := 0; i < NumGlyphs; i++ {
		r := atlas.Rects[i]
		if IsSpace(byte(i)) {
			continue
		}
		rowOf[r.Y]++
	}
	if rowOf[0] != perRow {
		t.Errorf("first row holds %d glyphs, want %d", rowOf[0], perRow)
	}
	if rowOf[12+Padding] != perRow {
		t.Errorf("second row holds %d glyphs, want %d", rowOf[12+Padding], perRow)
	}
}

func TestPackSkipsWhitespace(t *testing.T) {
	atlas, _ := Pack(&gridFont{id: 1, height: 8, width: 6})

	for _, code := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		if r := atlas.Glyph(code); r != (Rect{}) {
			t.Errorf("Glyph(%q) = %v, want zero rect", code, r)
		}
	}
	if atlas.Glyph('A').Empty() {
		t.Error("Glyph('A') should be populated")
	}
}

func TestPackGrowsInSteps(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
	}{
		{"fits", 8, 6},
		{"tall", 40, 30},
		{"taller than a step", 300, 10},
		{"oversized width", 20, 1000},
		{"zero height", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &gridFont{id: 7, height: tt.height, width: tt.width}
			atlas, pix := Pack(f)

			if atlas.Height < GrowStep || atlas.Height%GrowStep != 0 {
				t.Errorf("Height = %d, want a positive multiple of %d", atlas.Height, GrowStep)
			}
			if len(pix) != Width*atlas.Height*4 {
				t.Errorf("len(pix) = %d, want %d", len(pix), Width*atlas.Height*4)
			}
			if f.outOfBounds != 0 {
				t.Errorf("%d glyphs were asked to render outside the buffer", f.outOfBounds)
			}
			for i, r := range atlas.Rects {
				if r.X+r.W > Width || r.Y+r.H > atlas.Height {
					t.Errorf("rect %d = %v exceeds %dx%d", i, r, Width, atlas.Height)
				}
			}
		})
	}
}

func TestPackPreservesPixelsAcrossGrowth(t *testing.T) {
	// 40px rows overflow the first step after a handful of rows.
	atlas, pix := Pack(&gridFont{id: 1, height: 40, width: 30})
	if atlas.Height == GrowStep {
		t.Fatal("expected the atlas to grow")
	}

	for _, code := range []byte{'!', 'A', 0xFF} {
		r := atlas.Glyph(code)
		i := (r.Y*Width + r.X) * 4
		if pix[i] != code || pix[i+3] != 255 {
			t.Errorf("glyph %#x pixel = %v, want its code", code, pix[i:i+4])
		}
	}
}

func TestCacheIdempotent(t *testing.T) {
	sink := newFakeSink()
	c := NewCache(sink)
	f := &gridFont{id: 3, height: 10, width: 8}

	a1, built, err := c.GetOrBuild(f)
	if err != nil || !built {
		t.Fatalf("first GetOrBuild() = %v, %v", built, err)
	}
	a2, built, err := c.GetOrBuild(f)
	if err != nil || built {
		t.Fatalf("second GetOrBuild() = %v, %v", built, err)
	}
	if a1 != a2 {
		t.Error("GetOrBuild should return the same atlas for the same font")
	}
	if sink.next != 1 {
		t.Errorf("allocated %d textures, want 1", sink.next)
	}
	if sink.sizes[a1.TextureID] != [2]int{Width, a1.Height} {
		t.Errorf("uploaded size = %v, want %dx%d", sink.sizes[a1.TextureID], Width, a1.Height)
	}
	if got, ok := c.Lookup(3); !ok || got != a1 {
		t.Error("Lookup(3) should return the cached atlas")
	}
}

func TestCacheSeparatesFonts(t *testing.T) {
	c := NewCache(newFakeSink())
	a, _, _ := c.GetOrBuild(&gridFont{id: 1, height: 10, width: 8})
	b, _, _ := c.GetOrBuild(&gridFont{id: 2, height: 10, width: 8})

	if a.TextureID == b.TextureID {
		t.Error("distinct fonts should get distinct textures")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}
}

func TestCacheAllocateFailure(t *testing.T) {
	sink := newFakeSink()
	sink.limit = 0
	c := NewCache(sink)

	_, _, err := c.GetOrBuild(&gridFont{id: 1, height: 10, width: 8})
	if !errors.Is(err, errFull) {
		t.Errorf("GetOrBuild() error = %v, want wrapped errFull", err)
	}
	if c.Len() != 0 {
		t.Error("failed builds must not be cached")
	}
}
