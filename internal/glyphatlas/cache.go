// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphatlas

import (
	"fmt"
)

// TextureSink stores packed atlas pixels. *texture.Registry satisfies it.
type TextureSink interface {
	Allocate() (int, error)
	Replace(id int, rgba []byte, width, height int) error
}

// Cache builds atlases on first use and keeps them for its lifetime.
//
// Fonts are assumed immutable once drawn with: an atlas is keyed by the
// font ID alone and is never rebuilt.
//
// Cache is not safe for concurrent use.
type Cache struct {
	sink    TextureSink
	atlases map[int]*Atlas
}

// NewCache creates an empty cache uploading into sink.
func NewCache(sink TextureSink) *Cache {
	return &Cache{
		sink:    sink,
		atlases: make(map[int]*Atlas),
	}
}

// GetOrBuild returns the atlas for src, packing and uploading it when the
// font has not been seen before. The second result reports whether a new
// atlas was built.
func (c *Cache) GetOrBuild(src Source) (*Atlas, bool, error) {
	if a, ok := c.atlases[src.ID()]; ok {
		return a, false, nil
	}

	atlas, pix := Pack(src)

	id, err := c.sink.Allocate()
	if err != nil {
		return nil, false, fmt.Errorf("glyphatlas: font %d: %w", src.ID(), err)
	}
	if err := c.sink.Replace(id, pix, Width, atlas.Height); err != nil {
		return nil, false, fmt.Errorf("glyphatlas: font %d: %w", src.ID(), err)
	}
	atlas.TextureID = id

	c.atlases[atlas.FontID] = atlas
	return atlas, true, nil
}

// Lookup returns the cached atlas for fontID.
func (c *Cache) Lookup(fontID int) (*Atlas, bool) {
	a, ok := c.atlases[fontID]
	return a, ok
}

// Len returns the number of cached atlases.
func (c *Cache) Len() int {
	return len(c.atlases)
}

// Reset forgets every atlas. Their textures belong to the sink and are
// released with it.
func (c *Cache) Reset() {
	clear(c.atlases)
}
